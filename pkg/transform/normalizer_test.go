package transform

import (
	"errors"
	"testing"

	apiStreams "addressprocessor/pkg/api/streams"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "No options"},
		{name: "All options", opts: []Option{WithTrimSpace(), WithCollapseSpaces(), WithUnicodeNFC(), WithSanitize(), WithTitleCaseNames("en")}},
		{name: "Empty language", opts: []Option{WithTitleCaseNames("  ")}, wantErr: errLanguageNotSpecified},
		{name: "Bad language", opts: []Option{WithTitleCaseNames("not a tag!")}, wantErr: errInvalidLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && n == nil {
				t.Errorf("New() returned nil normalizer with no error")
			}
			if err != nil && n != nil {
				t.Errorf("New() returned normalizer with error: %v", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   apiStreams.Record
		want apiStreams.Record
	}{
		{
			name: "Identity",
			in:   apiStreams.Record{Field1: "  p. sherman\t", Field2: "42 Wallaby Way|Sydney"},
			want: apiStreams.Record{Field1: "  p. sherman\t", Field2: "42 Wallaby Way|Sydney"},
		},
		{
			name: "Trim",
			opts: []Option{WithTrimSpace()},
			in:   apiStreams.Record{Field1: "  P. Sherman ", Field2: "\t42 Wallaby Way|Sydney\n"},
			want: apiStreams.Record{Field1: "P. Sherman", Field2: "42 Wallaby Way|Sydney"},
		},
		{
			name: "Collapse spaces",
			opts: []Option{WithCollapseSpaces()},
			in:   apiStreams.Record{Field1: "P.   Sherman", Field2: "42  Wallaby   Way"},
			want: apiStreams.Record{Field1: "P. Sherman", Field2: "42 Wallaby Way"},
		},
		{
			name: "Sanitize separators",
			opts: []Option{WithSanitize()},
			in:   apiStreams.Record{Field1: "P.\tSherman", Field2: "42 Wallaby Way\r\nSydney\n"},
			want: apiStreams.Record{Field1: "P. Sherman", Field2: "42 Wallaby Way Sydney "},
		},
		{
			name: "NFC",
			opts: []Option{WithUnicodeNFC()},
			in:   apiStreams.Record{Field1: "Jose\u0301", Field2: "Cafe\u0301 St."},
			want: apiStreams.Record{Field1: "Jos\u00e9", Field2: "Caf\u00e9 St."},
		},
		{
			name: "Title case names only",
			opts: []Option{WithTitleCaseNames("en")},
			in:   apiStreams.Record{Field1: "shelby macias", Field2: "3027 lorem st."},
			want: apiStreams.Record{Field1: "Shelby Macias", Field2: "3027 lorem st."},
		},
		{
			name: "Combined",
			opts: []Option{WithSanitize(), WithCollapseSpaces(), WithTrimSpace(), WithTitleCaseNames("en")},
			in:   apiStreams.Record{Field1: " porter\t\tcoffey ", Field2: " Palo Alto |\tFl. "},
			want: apiStreams.Record{Field1: "Porter Coffey", Field2: "Palo Alto | Fl."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(tt.opts...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := n.Apply(tt.in); got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyNilNormalizer(t *testing.T) {
	var n *Normalizer
	in := apiStreams.Record{Field1: "a", Field2: "b"}
	if got := n.Apply(in); got != in {
		t.Errorf("Apply() = %+v, want %+v", got, in)
	}
}
