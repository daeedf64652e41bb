package encoder

import (
	"strconv"

	"github.com/ericlevine/databar/bitutil"
	"github.com/ericlevine/databar/gs1"
)

// Method is an encodation method, named by its header bits after the
// linkage flag.
type Method string

const (
	MethodAI01AndOtherAIs Method = "1"
	MethodGeneral         Method = "00"
	MethodAI013103        Method = "0100"
	MethodAI01320x        Method = "0101"
	MethodAI01392x        Method = "01100"
	MethodAI01393x        Method = "01101"
)

// methodAI013x0x1x returns the method "0111xxx" for AI 310x (weight in kg)
// or 320x (weight in lb) with date AI 11, 13, 15 or 17.
func methodAI013x0x1x(lb bool, dateAI string) Method {
	v := 56 + 2*((int(dateAI[1]-'0')-1)/2)
	if lb {
		v++
	}
	return Method("0" + strconv.FormatInt(int64(v), 2))
}

// variableLength reports whether the header of m carries the two bits
// giving the symbol size.
func (m Method) variableLength() bool {
	switch m {
	case MethodAI01AndOtherAIs, MethodGeneral, MethodAI01392x, MethodAI01393x:
		return true
	}
	return false
}

// noDate is the date field of a "0111xxx" symbol without a date element.
const noDate = 38400

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// selectMethod picks the densest encodation method for elements.
func selectMethod(elements []gs1.Element) Method {
	first := elements[0]
	if first.AI != "01" {
		return MethodGeneral
	}
	if first.Data[0] != '9' || len(elements) < 2 {
		return MethodAI01AndOtherAIs
	}
	second := elements[1]
	ai3 := second.AI[:min(3, len(second.AI))]
	if len(elements) == 2 {
		weight := atoi(second.Data)
		switch {
		case second.AI == "3103" && weight <= 32767:
			return MethodAI013103
		case second.AI == "3202" && weight <= 9999, second.AI == "3203" && weight <= 22767:
			return MethodAI01320x
		}
	}
	if (ai3 == "310" || ai3 == "320") && len(second.AI) == 4 && atoi(second.Data) <= 99999 {
		switch {
		case len(elements) == 2:
			return methodAI013x0x1x(ai3 == "320", "11")
		case len(elements) == 3 && isCompressibleDate(elements[2].AI):
			return methodAI013x0x1x(ai3 == "320", elements[2].AI)
		}
	}
	if len(second.AI) == 4 && second.AI[3] <= '3' {
		switch {
		case ai3 == "392":
			return MethodAI01392x
		case ai3 == "393" && len(second.Data) > 3:
			return MethodAI01393x
		}
	}
	return MethodAI01AndOtherAIs
}

func isCompressibleDate(ai string) bool {
	switch ai {
	case "11", "13", "15", "17":
		return true
	}
	return false
}

// appendCompressedGTIN packs digits 1 to 12 of a GTIN-14 as four groups of
// three digits. The first digit and the check digit are implied.
func appendCompressedGTIN(bits *bitutil.BitArray, gtin string) {
	for i := 0; i < 4; i++ {
		bits.AppendBits(uint32(atoi(gtin[1+3*i:4+3*i])), 10)
	}
}

// appendDate packs a YYMMDD date in 16 bits.
func appendDate(bits *bitutil.BitArray, yymmdd string) {
	yy, mm, dd := atoi(yymmdd[0:2]), atoi(yymmdd[2:4]), atoi(yymmdd[4:6])
	bits.AppendBits(uint32(yy*384+(mm-1)*32+dd), 16)
}

// appendFixed writes the method header and the fixed fields of m, and
// returns the offset into the reduced data where the general purpose field
// starts, or -1 when there is none. The header includes room for the
// variable length bits.
func appendFixed(bits *bitutil.BitArray, m Method, elements []gs1.Element) int {
	for i := 0; i < len(m); i++ {
		bits.AppendBit(m[i] == '1')
	}
	if m.variableLength() {
		bits.AppendBits(0, 2)
	}
	gtin := elements[0].Data
	switch m {
	case MethodGeneral:
		return 0
	case MethodAI01AndOtherAIs:
		bits.AppendBits(uint32(gtin[0]-'0'), 4)
		appendCompressedGTIN(bits, gtin)
		return 2 + gs1.GTINLength
	case MethodAI013103:
		appendCompressedGTIN(bits, gtin)
		bits.AppendBits(uint32(atoi(elements[1].Data)), 15)
		return -1
	case MethodAI01320x:
		appendCompressedGTIN(bits, gtin)
		weight := atoi(elements[1].Data)
		if elements[1].AI == "3203" {
			weight += 10000
		}
		bits.AppendBits(uint32(weight), 15)
		return -1
	case MethodAI01392x, MethodAI01393x:
		appendCompressedGTIN(bits, gtin)
		bits.AppendBits(uint32(elements[1].AI[3]-'0'), 2)
		offset := 2 + gs1.GTINLength + 4
		if m == MethodAI01393x {
			bits.AppendBits(uint32(atoi(elements[1].Data[:3])), 10)
			offset += 3
		}
		return offset
	}
	// "0111xxx"
	appendCompressedGTIN(bits, gtin)
	weight := int(elements[1].AI[3]-'0')*100000 + atoi(elements[1].Data)
	bits.AppendBits(uint32(weight), 20)
	if len(elements) == 3 {
		appendDate(bits, elements[2].Data)
	} else {
		bits.AppendBits(noDate, 16)
	}
	return -1
}
