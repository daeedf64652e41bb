package encoder

import (
	"fmt"
	"strings"

	"github.com/ericlevine/databar/bitutil"
	"github.com/ericlevine/databar/gs1"
)

// decodeBits reverses Encode for tests. It returns the reduced element
// string, with FNC1 separators, that the bits hold.
func decodeBits(information *bitutil.BitArray) (string, error) {
	gd := &generalDecoder{information: information}
	if information.Get(1) {
		return decodeAI01AndOtherAIs(gd)
	}
	if !information.Get(2) {
		return gd.decodeGeneralField(5)
	}
	switch information.Extract(1, 4) {
	case 4:
		return decodeAI013103(gd)
	case 5:
		return decodeAI01320x(gd)
	}
	switch information.Extract(1, 5) {
	case 12:
		return decodeAI0139xx(gd, "392")
	case 13:
		return decodeAI0139xx(gd, "393")
	}
	if v := information.Extract(1, 7); v >= 56 && v <= 63 {
		ai := "310"
		if v%2 == 1 {
			ai = "320"
		}
		return decodeAI013x0x1x(gd, ai, fmt.Sprintf("1%d", 1+2*((v-56)/2)))
	}
	return "", fmt.Errorf("unknown method header %s", information)
}

type generalDecoder struct {
	information *bitutil.BitArray
	position    int
	mode        Mode
	buf         strings.Builder
}

func (gd *generalDecoder) size() int {
	return gd.information.Size()
}

func (gd *generalDecoder) extract(pos, bits int) int {
	return gd.information.Extract(pos, bits)
}

// decodeGeneralField decodes the general purpose field from pos to the end.
// Trailing FNC1 left by a final odd digit is dropped.
func (gd *generalDecoder) decodeGeneralField(pos int) (string, error) {
	gd.position = pos
	gd.mode = ModeNumeric
	for gd.position < gd.size() {
		start := gd.position
		var done bool
		var err error
		switch gd.mode {
		case ModeAlphanumeric:
			gd.parseAlphaBlock()
		case ModeISO646:
			err = gd.parseISO646Block()
		default:
			done, err = gd.parseNumericBlock()
		}
		if err != nil {
			return "", err
		}
		if done || start == gd.position {
			break
		}
	}
	return strings.TrimRight(gd.buf.String(), string(gs1.FNC1)), nil
}

func (gd *generalDecoder) parseNumericBlock() (bool, error) {
	for gd.isStillNumeric() {
		if gd.position+7 > gd.size() {
			numeric := gd.extract(gd.position, 4)
			gd.position = gd.size()
			if numeric != 0 {
				gd.buf.WriteByte(byte('0' + numeric - 1))
			}
			return true, nil
		}
		numeric := gd.extract(gd.position, 7)
		gd.position += 7
		d1, d2 := (numeric-8)/11, (numeric-8)%11
		if numeric < 8 || d1 > 10 {
			return false, fmt.Errorf("bad numeric value %d", numeric)
		}
		gd.writeNumeric(d1)
		gd.writeNumeric(d2)
	}
	if gd.isZeroLatch(4) {
		gd.mode = ModeAlphanumeric
		gd.position += 4
	}
	return false, nil
}

func (gd *generalDecoder) writeNumeric(d int) {
	if d == 10 {
		gd.buf.WriteByte(gs1.FNC1)
		return
	}
	gd.buf.WriteByte(byte('0' + d))
}

func (gd *generalDecoder) isStillNumeric() bool {
	pos := gd.position
	if pos+7 > gd.size() {
		return pos+4 <= gd.size()
	}
	return gd.extract(pos, 4) != 0
}

func (gd *generalDecoder) parseAlphaBlock() {
	for gd.isStillAlpha() {
		five := gd.extract(gd.position, 5)
		switch {
		case five == 15:
			gd.buf.WriteByte(gs1.FNC1)
			gd.position += 5
			gd.mode = ModeNumeric
			return
		case five >= 5 && five < 15:
			gd.buf.WriteByte(byte('0' + five - 5))
			gd.position += 5
		default:
			six := gd.extract(gd.position, 6)
			if six < 58 {
				gd.buf.WriteByte(byte(six + 33))
			} else {
				gd.buf.WriteByte(alphanumericPunctuation[six-58])
			}
			gd.position += 6
		}
	}
	gd.parseLatch(ModeISO646)
}

func (gd *generalDecoder) isStillAlpha() bool {
	pos := gd.position
	if pos+5 > gd.size() {
		return false
	}
	if five := gd.extract(pos, 5); five >= 5 && five < 16 {
		return true
	}
	if pos+6 > gd.size() {
		return false
	}
	six := gd.extract(pos, 6)
	return six >= 16 && six < 63
}

func (gd *generalDecoder) parseISO646Block() error {
	for gd.isStillISO646() {
		five := gd.extract(gd.position, 5)
		switch {
		case five == 15:
			gd.buf.WriteByte(gs1.FNC1)
			gd.position += 5
			gd.mode = ModeNumeric
			return nil
		case five >= 5 && five < 15:
			gd.buf.WriteByte(byte('0' + five - 5))
			gd.position += 5
			continue
		}
		seven := gd.extract(gd.position, 7)
		switch {
		case seven >= 64 && seven < 90:
			gd.buf.WriteByte(byte(seven + 1))
			gd.position += 7
			continue
		case seven >= 90 && seven < 116:
			gd.buf.WriteByte(byte(seven + 7))
			gd.position += 7
			continue
		}
		eight := gd.extract(gd.position, 8)
		if eight < 232 || eight >= 232+len(isoPunctuation) {
			return fmt.Errorf("bad ISO 646 value %d", eight)
		}
		gd.buf.WriteByte(isoPunctuation[eight-232])
		gd.position += 8
	}
	gd.parseLatch(ModeAlphanumeric)
	return nil
}

func (gd *generalDecoder) isStillISO646() bool {
	pos := gd.position
	if pos+5 > gd.size() {
		return false
	}
	if five := gd.extract(pos, 5); five >= 5 && five < 16 {
		return true
	}
	if pos+7 > gd.size() {
		return false
	}
	if seven := gd.extract(pos, 7); seven >= 64 && seven < 116 {
		return true
	}
	if pos+8 > gd.size() {
		return false
	}
	eight := gd.extract(pos, 8)
	return eight >= 232 && eight < 253
}

// parseLatch handles "000" to numeric and "00100" to other, which may be
// cut short by the end of the data.
func (gd *generalDecoder) parseLatch(other Mode) {
	pos := gd.position
	if pos+3 <= gd.size() && gd.extract(pos, 3) == 0 {
		gd.position += 3
		gd.mode = ModeNumeric
		return
	}
	n := min(5, gd.size()-pos)
	if n > 0 && gd.extract(pos, n) == 4>>uint(5-n) {
		gd.position += n
		gd.mode = other
	}
}

func (gd *generalDecoder) isZeroLatch(n int) bool {
	n = min(n, gd.size()-gd.position)
	return n > 0 && gd.extract(gd.position, n) == 0
}

const gtinSize = 40

// decodeCompressedGTIN writes "01" and the GTIN with the given first digit
// and a computed check digit.
func (gd *generalDecoder) decodeCompressedGTIN(first byte, pos int) string {
	var sb strings.Builder
	sb.WriteByte(first)
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, "%03d", gd.extract(pos+10*i, 10))
	}
	body := sb.String()
	return fmt.Sprintf("01%s%d", body, gs1.CheckDigit(body))
}

func decodeAI01AndOtherAIs(gd *generalDecoder) (string, error) {
	header := 1 + 1 + 2
	first := byte('0' + gd.extract(header, 4))
	gtin := gd.decodeCompressedGTIN(first, header+4)
	rest, err := gd.decodeGeneralField(header + 4 + gtinSize)
	if err != nil {
		return "", err
	}
	return gtin + rest, nil
}

func decodeAI013103(gd *generalDecoder) (string, error) {
	header := 4 + 1
	if gd.size() != header+gtinSize+15 {
		return "", fmt.Errorf("bad size %d", gd.size())
	}
	gtin := gd.decodeCompressedGTIN('9', header)
	return fmt.Sprintf("%s3103%06d", gtin, gd.extract(header+gtinSize, 15)), nil
}

func decodeAI01320x(gd *generalDecoder) (string, error) {
	header := 4 + 1
	if gd.size() != header+gtinSize+15 {
		return "", fmt.Errorf("bad size %d", gd.size())
	}
	gtin := gd.decodeCompressedGTIN('9', header)
	weight := gd.extract(header+gtinSize, 15)
	if weight < 10000 {
		return fmt.Sprintf("%s3202%06d", gtin, weight), nil
	}
	return fmt.Sprintf("%s3203%06d", gtin, weight-10000), nil
}

func decodeAI0139xx(gd *generalDecoder, ai string) (string, error) {
	header := 5 + 1 + 2
	gtin := gd.decodeCompressedGTIN('9', header)
	pos := header + gtinSize
	out := fmt.Sprintf("%s%s%d", gtin, ai, gd.extract(pos, 2))
	pos += 2
	if ai == "393" {
		out += fmt.Sprintf("%03d", gd.extract(pos, 10))
		pos += 10
	}
	rest, err := gd.decodeGeneralField(pos)
	if err != nil {
		return "", err
	}
	return out + rest, nil
}

func decodeAI013x0x1x(gd *generalDecoder, ai, dateAI string) (string, error) {
	header := 7 + 1
	if gd.size() != header+gtinSize+20+16 {
		return "", fmt.Errorf("bad size %d", gd.size())
	}
	gtin := gd.decodeCompressedGTIN('9', header)
	weight := gd.extract(header+gtinSize, 20)
	out := fmt.Sprintf("%s%s%d%06d", gtin, ai, weight/100000, weight%100000)
	date := gd.extract(header+gtinSize+20, 16)
	if date == noDate {
		return out, nil
	}
	day := date % 32
	date /= 32
	return out + fmt.Sprintf("%s%02d%02d%02d", dateAI, date/12, date%12+1, day), nil
}
