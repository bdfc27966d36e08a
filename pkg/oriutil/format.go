/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package oriutil

import "strconv"

// FormatNumber formats an Ori number for display: the shortest decimal
// representation that parses back to the same IEEE-754 double. Integral
// values below one million come out without a decimal point ("7", not
// "7.0"); from an exponent of 6 upward the exponent form is used
// ("1.23456789e+08").
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
