package almanac

import _ "embed"

// Sample is the worked example almanac. Its lowest seed location is 35 and
// its lowest seed-range location is 46.
//
//go:embed sample.txt
var Sample string
