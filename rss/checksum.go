package rss

// Checksum weights of the 96 module symbols, 3^k mod 79, eight per
// character.
var omniChecksumWeights = [32]int{
	1, 3, 9, 27, 2, 6, 18, 54,
	4, 12, 36, 29, 8, 24, 72, 58,
	16, 48, 65, 37, 32, 17, 51, 74,
	64, 34, 23, 69, 49, 68, 46, 59,
}

// Checksum weights of Limited, 3^k mod 89, fourteen per character.
var limitedChecksumWeights = [28]int{
	1, 3, 9, 27, 81, 65, 17, 51, 64, 14, 42, 37, 22, 66,
	20, 60, 2, 6, 18, 54, 73, 41, 34, 13, 39, 28, 84, 74,
}

// limitedCheckSequence maps a Limited checksum to the value of its check
// character. The value v splits into spaces v/21 and bars v%21.
var limitedCheckSequence = [89]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39,
	40, 41, 42, 43, 45, 52, 57, 63, 64, 65,
	66, 73, 74, 75, 76, 77, 78, 79, 82, 126,
	127, 128, 129, 130, 132, 141, 142, 143, 144, 145,
	146, 151, 152, 153, 155, 156, 169, 170, 171, 172,
	173, 174, 176, 177, 178, 180, 183, 184, 186,
}

// Checksum weights of Expanded characters. The row depends on the finder
// next to the character and on which side of it the character is.
var expandedChecksumWeights = [23][8]int{
	{1, 3, 9, 27, 81, 32, 96, 77},
	{20, 60, 180, 118, 143, 7, 21, 63},
	{189, 145, 13, 39, 117, 140, 209, 205},
	{193, 157, 49, 147, 19, 57, 171, 91},
	{62, 186, 136, 197, 169, 85, 44, 132},
	{185, 133, 188, 142, 4, 12, 36, 108},
	{113, 128, 173, 97, 80, 29, 87, 50},
	{150, 28, 84, 41, 123, 158, 52, 156},
	{46, 138, 203, 187, 139, 206, 196, 166},
	{76, 17, 51, 153, 37, 111, 122, 155},
	{43, 129, 176, 106, 107, 110, 119, 146},
	{16, 48, 144, 10, 30, 90, 59, 177},
	{109, 116, 137, 200, 178, 112, 125, 164},
	{70, 210, 208, 202, 184, 130, 179, 115},
	{134, 191, 151, 31, 93, 68, 204, 190},
	{148, 22, 66, 198, 172, 94, 71, 2},
	{6, 18, 54, 162, 64, 192, 154, 40},
	{120, 149, 25, 75, 14, 42, 126, 167},
	{79, 26, 78, 23, 69, 207, 199, 175},
	{103, 98, 83, 38, 114, 131, 182, 124},
	{161, 61, 183, 127, 170, 88, 53, 159},
	{55, 165, 73, 8, 24, 72, 5, 15},
	{45, 135, 194, 160, 58, 174, 100, 89},
}

// adjustOmniChecksum maps the 79 residues onto 0..80, skipping 8 and 72,
// so that the finder pairs (0, 8) and (8, 0) never occur.
func adjustOmniChecksum(cs int) int {
	if cs >= 8 {
		cs++
	}
	if cs >= 72 {
		cs++
	}
	return cs
}

// omniChecksum returns the adjusted checksum of the four characters of a
// 96 module symbol, each given as 8 widths in reading order before any
// reversal.
func omniChecksum(chars [4][]int) int {
	sum := 0
	for c := 0; c < 4; c++ {
		for i := 0; i < 8; i++ {
			sum += chars[c][i] * omniChecksumWeights[8*c+i]
		}
	}
	return adjustOmniChecksum(sum % 79)
}

// limitedChecksum returns the mod 89 checksum of the two Limited
// characters.
func limitedChecksum(left, right []int) int {
	sum := 0
	for i := 0; i < 14; i++ {
		sum += left[i]*limitedChecksumWeights[i] + right[i]*limitedChecksumWeights[i+14]
	}
	return sum % 89
}

// expandedWeightRow returns the weight row of data character i (the check
// character not counted) in a symbol of pairs pairs.
func expandedWeightRow(pairs, i int) int {
	p := (i + 1) / 2
	row := 4*expandedFinderSequences[pairs-2][p] + 2*(p%2) - 1
	if (i+1)%2 != 0 {
		row++ // right of its finder
	}
	return row
}

// expandedCheckValue returns the value of the check character for the data
// characters chars, each given as 8 widths before any reversal.
func expandedCheckValue(chars [][]int) int {
	s := len(chars) + 1
	pairs := (s + 1) / 2
	sum := 0
	for i, w := range chars {
		row := expandedWeightRow(pairs, i)
		for j := 0; j < 8; j++ {
			sum += w[j] * expandedChecksumWeights[row][j]
		}
	}
	return 211*(s-4) + sum%211
}
