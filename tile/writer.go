package tile

// Packer accumulates tile codes into bytes. The zero value is ready to use.
type Packer struct {
	acc byte
	n   int
}

// Add packs c into the current byte. Once four codes have been added the
// completed byte is returned along with true and the Packer starts afresh.
func (p *Packer) Add(c Code) (byte, bool) {
	p.acc |= byte(c&codeMask) << (p.n * bitsPerTile)
	p.n++

	if p.n < tilesPerByte {
		return 0, false
	}

	b := p.acc
	p.acc, p.n = 0, 0
	return b, true
}

// Pending returns the number of codes held in an incomplete byte.
func (p *Packer) Pending() int {
	return p.n
}

// Pack packs codes four to a byte. Codes left over at the end that do not
// fill a byte are not packed; their number is returned as dropped.
func Pack(codes []Code) (packed []byte, dropped int) {
	var p Packer
	packed = make([]byte, 0, len(codes)/tilesPerByte)
	for _, c := range codes {
		if b, ok := p.Add(c); ok {
			packed = append(packed, b)
		}
	}
	return packed, p.Pending()
}
