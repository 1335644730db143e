package forum

import "testing"

func TestThumbState_Transition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		from   ThumbState
		to     ThumbState
		want   ThumbDelta
		wantOK bool
	}{
		{name: "up again", from: ThumbUp, to: ThumbUp, wantOK: false},
		{name: "down to up", from: ThumbDown, to: ThumbUp, want: ThumbDelta{Likes: 1, Dislikes: -1}, wantOK: true},
		{name: "none to up", from: ThumbNone, to: ThumbUp, want: ThumbDelta{Likes: 1}, wantOK: true},
		{name: "down again", from: ThumbDown, to: ThumbDown, wantOK: false},
		{name: "up to down", from: ThumbUp, to: ThumbDown, want: ThumbDelta{Likes: -1, Dislikes: 1}, wantOK: true},
		{name: "none to down", from: ThumbNone, to: ThumbDown, want: ThumbDelta{Dislikes: 1}, wantOK: true},
		{name: "reset unrated", from: ThumbNone, to: ThumbNone, wantOK: false},
		{name: "reset up", from: ThumbUp, to: ThumbNone, want: ThumbDelta{Likes: -1}, wantOK: true},
		{name: "reset down", from: ThumbDown, to: ThumbNone, want: ThumbDelta{Dislikes: -1}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.from.Transition(tt.to)
			if ok != tt.wantOK {
				t.Fatalf("Transition(%s -> %s) ok = %v, want %v", tt.from, tt.to, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Transition(%s -> %s) = %+v, want %+v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

type stubThumb struct {
	Thumb
	up, down bool
}

func (s stubThumb) IsUp() bool   { return s.up }
func (s stubThumb) IsDown() bool { return s.down }

func TestStateOf(t *testing.T) {
	t.Parallel()

	if got := StateOf(stubThumb{}); got != ThumbNone {
		t.Errorf("StateOf(empty) = %s, want none", got)
	}
	if got := StateOf(stubThumb{up: true}); got != ThumbUp {
		t.Errorf("StateOf(up) = %s, want up", got)
	}
	if got := StateOf(stubThumb{down: true}); got != ThumbDown {
		t.Errorf("StateOf(down) = %s, want down", got)
	}
}
