package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"13", Version{13, 0, 0}, false},
		{"13.4", Version{13, 4, 0}, false},
		{"2.39.5", Version{2, 39, 5}, false},
		{"v1.2.3", Version{1, 2, 3}, false},
		{" 14.1 ", Version{14, 1, 0}, false},
		{"", Version{}, true},
		{"not a version", Version{}, true},
		{"1.2.3-extra", Version{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"git version 2.39.5 (Apple Git-154)", Version{2, 39, 5}, false},
		{"Homebrew 4.4.15", Version{4, 4, 15}, false},
		{"14.6.1", Version{14, 6, 1}, false},
		{"g++ (Ubuntu 11.4.0-1ubuntu1~22.04) 11.4.0", Version{11, 4, 0}, false},
		{"no digits here", Version{}, true},
	}

	for _, tt := range tests {
		got, err := Extract(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Extract(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{1, 0, 0}, Version{1, 0, 0}, 0},
		{Version{1, 0, 0}, Version{2, 0, 0}, -1},
		{Version{2, 0, 0}, Version{1, 0, 0}, 1},
		{Version{13, 4, 0}, Version{13, 0, 0}, 1},
		{Version{13, 0, 1}, Version{13, 0, 0}, 1},
		{Version{12, 9, 9}, Version{13, 0, 0}, -1},
	}

	for _, tt := range tests {
		got := tt.a.Compare(tt.b)
		if got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		a, b Version
		want bool
	}{
		{Version{13, 0, 0}, Version{13, 0, 0}, true},
		{Version{14, 6, 1}, Version{13, 0, 0}, true},
		{Version{12, 7, 0}, Version{13, 0, 0}, false},
	}

	for _, tt := range tests {
		got := tt.a.AtLeast(tt.b)
		if got != tt.want {
			t.Errorf("%v.AtLeast(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse(\"bogus\") did not panic")
		}
	}()
	MustParse("bogus")
}
