package cpu

// FetchByte reads one byte at IP through the instruction cache, then
// post-increments IP modulo 256.
func (c *CPU) FetchByte() byte {
	b := c.Cache.FetchByte(c.Memory[:], c.IP)
	c.IP++ // byte wraps mod 256 automatically
	return b
}

// push writes v at the byte below SP, pre-decrementing SP (wraps mod 256).
func (c *CPU) push(v byte) {
	c.SP--
	c.Memory[c.SP] = v
}

// pop reads the byte at SP, post-incrementing SP (wraps mod 256).
func (c *CPU) pop() byte {
	v := c.Memory[c.SP]
	c.SP++
	return v
}

// jump adds a signed 8-bit displacement to IP, wrapping mod 256.
func (c *CPU) jump(disp int8) {
	c.IP = byte(int(c.IP) + int(disp))
}
