package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{
			name: "absent form is always valid",
			req:  Request{Form: FormAbsent},
		},
		{
			name: "mark name form with end mark",
			req:  Request{Form: FormMarkName, MarkName: "a", EndMark: "b"},
		},
		{
			name:    "options with end mark",
			req:     Request{Form: FormOptions, Start: NameRef("a"), EndMark: "b"},
			wantErr: true,
		},
		{
			name:    "options without start and end",
			req:     Request{Form: FormOptions},
			wantErr: true,
		},
		{
			name:    "options with duration only",
			req:     Request{Form: FormOptions, Duration: TimestampRef(100)},
			wantErr: true,
		},
		{
			name: "options over-determined",
			req: Request{
				Form:     FormOptions,
				Start:    NameRef("a"),
				End:      NameRef("b"),
				Duration: TimestampRef(1),
			},
			wantErr: true,
		},
		{
			name: "options start and end",
			req:  Request{Form: FormOptions, Start: NameRef("a"), End: NameRef("b")},
		},
		{
			name: "options start and duration",
			req:  Request{Form: FormOptions, Start: NameRef("a"), Duration: TimestampRef(1)},
		},
		{
			name: "options end only",
			req:  Request{Form: FormOptions, End: TimestampRef(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}

			assert.NoError(t, err)
		})
	}
}
