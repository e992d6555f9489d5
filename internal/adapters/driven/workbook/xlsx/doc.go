// Package xlsx implements the workbook ports against xlsx files using
// excelize. The input workbook holds one wide-format tab per indicator
// (Year column plus one column per country); the output workbook holds one
// long-format tab per indicator plus the projection_log tab.
package xlsx
