package token

import (
	"fmt"
	"strconv"
)

// PosDoc wraps an input buffer so that byte offsets into it can be
// rendered as positions with line and column information.
type PosDoc struct {
	d []byte
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

// LineCol returns the 0-based line and column of the byte offset off.
func (p *PosDoc) LineCol(off int) (int, int) {
	if off > len(p.d) {
		off = len(p.d)
	}
	line, col := 0, 0
	for i := 0; i < off; i++ {
		if p.d[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

func (p *PosDoc) End() *Pos {
	return &Pos{I: len(p.d), D: p}
}

// Pos is a byte offset into a PosDoc.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
