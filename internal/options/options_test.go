package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCodeList(t *testing.T) {
	tests := []struct {
		name  string
		codes string
		want  []string
	}{
		{name: "single code", codes: "SXIOPO", want: []string{"SXIOPO"}},
		{name: "two codes", codes: "SXIOPO+ZEXPYGLA", want: []string{"SXIOPO", "ZEXPYGLA"}},
		{name: "empty entry is kept", codes: "SXIOPO++GOSSIP", want: []string{"SXIOPO", "", "GOSSIP"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Program{Positional: Positional{Codes: tt.codes}}
			got := opts.CodeList()
			assert.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i])
			}
		})
	}
}
