package sales

import "strconv"

// saleIDPrefix is the fixed two-character prefix of every sale identifier.
const saleIDPrefix = "AS"

// NextSaleID derives the next identifier from the most recently inserted one.
// An empty or unparseable predecessor restarts the numeric part at 1; the
// decimal part carries no padding. Callers must hold the sale sequence lock
// inside the same transaction as the insert this identifier seeds, otherwise
// two concurrent sales can read the same predecessor.
func NextSaleID(last string) string {
	if len(last) <= len(saleIDPrefix) {
		return saleIDPrefix + "1"
	}
	n, err := strconv.Atoi(last[len(saleIDPrefix):])
	if err != nil {
		return saleIDPrefix + "1"
	}
	return saleIDPrefix + strconv.Itoa(n+1)
}
