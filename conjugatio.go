// Package conjugatio parses the Latin conjugation tables of Wiktionary
// pages into a normalized model of every verb form.
//
// The source table labels mood, voice and tense only intermittently: a
// mood rail row opens a mood, a two-header row sets the voice and names a
// tense, and following one-header rows name further tenses under the same
// voice. Classify recovers the full mood × voice × tense × person grid by
// carrying that context forward row by row. The non-finite section is
// read by row shape instead.
//
// Parsing is permissive. Rows that match no known shape are skipped, never
// reported as errors; ClassifyReport lists them as diagnostics. Only a
// missing table is an error.
package conjugatio

import "io"

// Parse reads an HTML page and returns the model of its conjugation table
// together with the diagnostics of skipped rows.
func Parse(r io.Reader) (*ConjugationTable, []Diagnostic, error) {
	rows, err := LoadRows(r)
	if err != nil {
		return nil, nil, err
	}
	table, diags := ClassifyReport(rows)
	return table, diags, nil
}
