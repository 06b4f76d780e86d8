package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name   string
		height int
		footer int
		want   int
	}{
		{"normal", 40, 1, 37},
		{"full help", 40, 8, 30},
		{"tiny", 2, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentHeight(tt.height, tt.footer); got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompute_Wide(t *testing.T) {
	p := Compute(100, 30, 5)

	if p.HistoryHeight != 9 {
		t.Errorf("HistoryHeight = %d, want 9", p.HistoryHeight)
	}
	if p.PlaylistsHeight+p.HistoryHeight != 30 {
		t.Errorf("left column = %d, want 30", p.PlaylistsHeight+p.HistoryHeight)
	}
	if p.TracksHeight != 30 {
		t.Errorf("TracksHeight = %d, want 30", p.TracksHeight)
	}
	if p.PlaylistsWidth+p.TracksWidth != 100 {
		t.Errorf("widths = %d, want 100", p.PlaylistsWidth+p.TracksWidth)
	}
}

func TestCompute_ShortWindowCapsHistory(t *testing.T) {
	p := Compute(100, 12, 5)
	if p.HistoryHeight != 4 {
		t.Errorf("HistoryHeight = %d, want 4", p.HistoryHeight)
	}
}

func TestCompute_Narrow(t *testing.T) {
	p := Compute(60, 31, 5)

	if p.TracksWidth != 60 || p.PlaylistsWidth != 60 || p.HistoryWidth != 60 {
		t.Errorf("narrow panels should take the full width: %+v", p)
	}
	if got := p.PlaylistsHeight + p.TracksHeight + p.HistoryHeight; got != 31 {
		t.Errorf("stacked height = %d, want 31", got)
	}
}

func TestLabelWidth(t *testing.T) {
	if got := LabelWidth(60); got != 33 {
		t.Errorf("LabelWidth(60) = %d, want 33", got)
	}
	if got := LabelWidth(10); got != 0 {
		t.Errorf("LabelWidth(10) = %d, want 0", got)
	}
}
