package common

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/imp-nix/regref/internal/analyze"
	"github.com/imp-nix/regref/internal/orchestrator"
)

// jsonPos mirrors hcl.Pos for stable, dependency-free JSON output.
type jsonPos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonReference struct {
	Full       string  `json:"full"`
	Tail       string  `json:"tail"`
	Verdict    string  `json:"verdict"`
	Suggestion string  `json:"suggestion,omitempty"`
	Start      jsonPos `json:"start"`
	End        jsonPos `json:"end"`
	StartByte  int     `json:"start_byte"`
	EndByte    int     `json:"end_byte"`
}

type jsonFile struct {
	Path        string          `json:"path"`
	ParseError  string          `json:"parse_error,omitempty"`
	References  []jsonReference `json:"references,omitempty"`
	BrokenCount int             `json:"broken_count"`
}

type jsonReport struct {
	Files       []jsonFile `json:"files"`
	TotalBroken int        `json:"total_broken"`
}

func verdictName(v analyze.Verdict) string {
	if v == analyze.Broken {
		return "broken"
	}

	return "valid"
}

// WriteJSON renders result as the machine-readable report shape.
func WriteJSON(w io.Writer, result orchestrator.Result) error {
	report := jsonReport{TotalBroken: result.TotalBroken()}

	for _, f := range result.Files {
		jf := jsonFile{Path: f.Path, BrokenCount: f.BrokenCount()}

		if f.ParseError != nil {
			jf.ParseError = f.ParseError.Error()
		}

		for _, c := range f.Classified {
			ref := jsonReference{
				Full:      c.Full,
				Tail:      c.Tail,
				Verdict:   verdictName(c.Verdict),
				Start:     jsonPos{Line: c.StartPos.Line, Column: c.StartPos.Column},
				End:       jsonPos{Line: c.EndPos.Line, Column: c.EndPos.Column},
				StartByte: c.Start,
				EndByte:   c.End,
			}

			if c.HasSuggestion {
				ref.Suggestion = c.Suggestion.String()
			}

			jf.References = append(jf.References, ref)
		}

		report.Files = append(report.Files, jf)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

// WriteText renders result as the human-readable report: one line per
// broken reference, then a summary line. Valid references are not listed,
// matching the teacher's convention of reporting problems, not restating
// the happy path.
func WriteText(w io.Writer, result orchestrator.Result) {
	for _, f := range result.Files {
		if f.ParseError != nil {
			fmt.Fprintf(w, "%s: parse error: %v\n", f.Path, f.ParseError)
			continue
		}

		for _, c := range f.Classified {
			if c.Verdict != analyze.Broken {
				continue
			}

			if c.HasSuggestion {
				fmt.Fprintf(w, "%s:%d:%d: broken reference %s (suggest %s)\n",
					f.Path, c.StartPos.Line, c.StartPos.Column, c.Full, c.Suggestion)
			} else {
				fmt.Fprintf(w, "%s:%d:%d: broken reference %s (no suggestion)\n",
					f.Path, c.StartPos.Line, c.StartPos.Column, c.Full)
			}
		}
	}

	for _, d := range result.DirErrors {
		fmt.Fprintf(w, "%s: %v\n", d.Path, d.Err)
	}

	fmt.Fprintf(w, "%d broken reference(s) found across %d file(s)\n", result.TotalBroken(), len(result.Files))
}
