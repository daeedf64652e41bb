package gs1

import "strconv"

// dataLength is the length rule for the data of one AI.
type dataLength struct {
	variable bool
	length   int
}

var (
	twoDigitDataLength            map[string]dataLength
	threeDigitDataLength          map[string]dataLength
	threeDigitPlusDigitDataLength map[string]dataLength
	fourDigitDataLength           map[string]dataLength
)

func init() {
	twoDigitDataLength = map[string]dataLength{
		"00": {false, 18}, "01": {false, 14}, "02": {false, 14},
		"10": {true, 20}, "11": {false, 6}, "12": {false, 6},
		"13": {false, 6}, "15": {false, 6}, "16": {false, 6},
		"17": {false, 6}, "20": {false, 2}, "21": {true, 20},
		"22": {true, 29}, "30": {true, 8}, "37": {true, 8},
	}
	for i := 90; i <= 99; i++ {
		twoDigitDataLength[strconv.Itoa(i)] = dataLength{true, 30}
	}

	threeDigitDataLength = map[string]dataLength{
		"235": {true, 28}, "240": {true, 30}, "241": {true, 30},
		"242": {true, 6}, "243": {true, 20}, "250": {true, 30},
		"251": {true, 30}, "253": {true, 30}, "254": {true, 20},
		"255": {true, 25}, "400": {true, 30}, "401": {true, 30},
		"402": {false, 17}, "403": {true, 30},
		"410": {false, 13}, "411": {false, 13}, "412": {false, 13},
		"413": {false, 13}, "414": {false, 13}, "415": {false, 13},
		"416": {false, 13}, "417": {false, 13},
		"420": {true, 20}, "421": {true, 15}, "422": {false, 3},
		"423": {true, 15}, "424": {false, 3}, "425": {true, 15},
		"426": {false, 3}, "427": {true, 3},
		"710": {true, 20}, "711": {true, 20}, "712": {true, 20},
		"713": {true, 20}, "714": {true, 20}, "715": {true, 20},
	}

	// Four digit AIs whose last digit is a parameter, such as the decimal
	// point position of a measure.
	threeDigitPlusDigitDataLength = map[string]dataLength{}
	for _, r := range [][2]int{{310, 316}, {320, 337}, {340, 357}, {360, 369}} {
		for i := r[0]; i <= r[1]; i++ {
			threeDigitPlusDigitDataLength[strconv.Itoa(i)] = dataLength{false, 6}
		}
	}
	threeDigitPlusDigitDataLength["390"] = dataLength{true, 15}
	threeDigitPlusDigitDataLength["391"] = dataLength{true, 18}
	threeDigitPlusDigitDataLength["392"] = dataLength{true, 15}
	threeDigitPlusDigitDataLength["393"] = dataLength{true, 18}
	threeDigitPlusDigitDataLength["394"] = dataLength{false, 4}
	threeDigitPlusDigitDataLength["395"] = dataLength{false, 6}
	threeDigitPlusDigitDataLength["703"] = dataLength{true, 30}
	threeDigitPlusDigitDataLength["723"] = dataLength{true, 30}

	fourDigitDataLength = map[string]dataLength{
		"4300": {true, 35}, "4301": {true, 35}, "4302": {true, 70},
		"4303": {true, 70}, "4304": {true, 70}, "4305": {true, 70},
		"4306": {true, 70}, "4307": {false, 2}, "4308": {true, 30},
		"4309": {false, 20}, "4310": {true, 35}, "4311": {true, 35},
		"4312": {true, 70}, "4313": {true, 70}, "4314": {true, 70},
		"4315": {true, 70}, "4316": {true, 70}, "4317": {false, 2},
		"4318": {true, 20}, "4319": {true, 30}, "4320": {true, 35},
		"4321": {false, 1}, "4322": {false, 1}, "4323": {false, 1},
		"4324": {false, 10}, "4325": {false, 10}, "4326": {false, 6},
		"7001": {false, 13}, "7002": {true, 30}, "7003": {false, 10},
		"7004": {true, 4}, "7005": {true, 12}, "7006": {false, 6},
		"7007": {true, 12}, "7008": {true, 3}, "7009": {true, 10},
		"7010": {true, 2}, "7011": {true, 10},
		"7020": {true, 20}, "7021": {true, 20}, "7022": {true, 20},
		"7023": {true, 30}, "7040": {false, 4}, "7240": {true, 20},
		"8001": {false, 14}, "8002": {true, 20}, "8003": {true, 30},
		"8004": {true, 30}, "8005": {false, 6}, "8006": {false, 18},
		"8007": {true, 34}, "8008": {true, 12}, "8009": {true, 50},
		"8010": {true, 30}, "8011": {true, 12}, "8012": {true, 20},
		"8013": {true, 25}, "8017": {false, 18}, "8018": {false, 18},
		"8019": {true, 10}, "8020": {true, 25}, "8026": {false, 18},
		"8100": {false, 6}, "8101": {false, 10}, "8102": {false, 2},
		"8110": {true, 70}, "8111": {false, 4}, "8112": {true, 70},
		"8200": {true, 70},
	}
}

// lookupAI returns the data length rule for ai, which must be the complete
// AI (2, 3 or 4 digits).
func lookupAI(ai string) (dataLength, bool) {
	switch len(ai) {
	case 2:
		dl, ok := twoDigitDataLength[ai]
		return dl, ok
	case 3:
		dl, ok := threeDigitDataLength[ai]
		return dl, ok
	case 4:
		if dl, ok := threeDigitPlusDigitDataLength[ai[:3]]; ok {
			return dl, true
		}
		dl, ok := fourDigitDataLength[ai]
		return dl, ok
	}
	return dataLength{}, false
}

// KnownAI reports whether ai is a supported Application Identifier.
func KnownAI(ai string) bool {
	_, ok := lookupAI(ai)
	return ok
}

// predefinedLength holds the AI prefixes whose element length is fixed by
// the GS1 General Specifications. No FNC1 separator follows them.
var predefinedLength = map[string]bool{
	"00": true, "01": true, "02": true, "03": true, "04": true,
	"11": true, "12": true, "13": true, "14": true, "15": true,
	"16": true, "17": true, "18": true, "19": true, "20": true,
	"31": true, "32": true, "33": true, "34": true, "35": true,
	"36": true, "41": true,
}

// NeedsSeparator reports whether an element with this AI must be followed
// by FNC1 when another element comes after it.
func NeedsSeparator(ai string) bool {
	return len(ai) < 2 || !predefinedLength[ai[:2]]
}

// numericPrefixes lists AIs, by prefix, whose data is digits only.
var numericPrefixes = []string{
	"00", "01", "02", "11", "12", "13", "15", "16", "17", "20",
	"31", "32", "33", "34", "35", "36", "39", "41",
	"422", "424", "426", "7001", "7003", "7006",
	"8001", "8005", "8006", "8017", "8018", "8026",
	"8100", "8101", "8102", "8111",
}

func numericAI(ai string) bool {
	for _, p := range numericPrefixes {
		if len(ai) >= len(p) && ai[:len(p)] == p {
			return true
		}
	}
	return false
}

// checkDigitAI reports whether the data of ai ends in a mod-10 check digit.
func checkDigitAI(ai string) bool {
	switch ai {
	case "00", "01", "02", "410", "411", "412", "413", "414", "415", "416", "417", "8017", "8018":
		return true
	}
	return false
}

// dateAI reports whether the data of ai is a YYMMDD date.
func dateAI(ai string) bool {
	switch ai {
	case "11", "12", "13", "15", "16", "17":
		return true
	}
	return false
}
