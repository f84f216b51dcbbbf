package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func answer(yes bool, asked *int) func() bool {
	return func() bool {
		*asked++
		return yes
	}
}

func TestDecideMove(t *testing.T) {
	tests := []struct {
		name      string
		skip      bool
		answer    bool
		want      Decision
		wantAsked int
	}{
		{name: "skip confirmation", skip: true, want: Proceed},
		{name: "confirmed", answer: true, want: Proceed, wantAsked: 1},
		{name: "declined", answer: false, want: Abort, wantAsked: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asked := 0
			assert.Equal(t, tt.want, DecideMove(tt.skip, answer(tt.answer, &asked)))
			assert.Equal(t, tt.wantAsked, asked)
		})
	}
}

func TestDecideDelete(t *testing.T) {
	tests := []struct {
		skip, delete bool
		want         Decision
	}{
		{skip: true, delete: true, want: DeleteNow},
		{skip: true, delete: false, want: SkipDelete},
		{skip: false, delete: true, want: DeleteAsk},
		{skip: false, delete: false, want: DeleteAsk},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecideDelete(tt.skip, tt.delete), "skip=%v delete=%v", tt.skip, tt.delete)
	}
}

func TestResolveAsk(t *testing.T) {
	asked := 0
	assert.Equal(t, DeleteNow, ResolveAsk(DeleteAsk, answer(true, &asked)))
	assert.Equal(t, SkipDelete, ResolveAsk(DeleteAsk, answer(false, &asked)))
	assert.Equal(t, 2, asked)

	// decisions that need no answer never ask
	assert.Equal(t, DeleteNow, ResolveAsk(DeleteNow, answer(false, &asked)))
	assert.Equal(t, SkipDelete, ResolveAsk(SkipDelete, answer(true, &asked)))
	assert.Equal(t, 2, asked)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "proceed", Proceed.String())
	assert.Equal(t, "skip delete", SkipDelete.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
