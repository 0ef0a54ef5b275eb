package session

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line    string
		want    Instruction
		ok      bool
		wantErr bool
	}{
		{"push 5", Instruction{Command: CmdPush, Arg: "5"}, true, false},
		{"  PUSH -12  ", Instruction{Command: CmdPush, Arg: "-12"}, true, false},
		{"pop", Instruction{Command: CmdPop}, true, false},
		{"peek # look", Instruction{Command: CmdPeek}, true, false},
		{"clear", Instruction{Command: CmdClear}, true, false},
		{"", Instruction{}, false, false},
		{"# only a comment", Instruction{}, false, false},

		{"push", Instruction{}, false, true},
		{"push 1 2", Instruction{}, false, true},
		{"pop 3", Instruction{}, false, true},
		{"undo", Instruction{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok, err := ParseLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLine(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, %v, want %+v, %v", tt.line, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	script := "# demo\npush 5\n\npush 3\npop\n"
	ins, err := ParseScript(strings.NewReader(script))
	if err != nil {
		t.Fatal(err)
	}
	if len(ins) != 3 {
		t.Fatalf("len = %d, want 3", len(ins))
	}
	if ins[1].Line != 4 || ins[1].String() != "push 3" {
		t.Errorf("ins[1] = %+v (%s)", ins[1], ins[1])
	}

	_, err = ParseScript(strings.NewReader("push 1\njump\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want line 2", err)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{"-3", -3, false},
		{" 10 ", 10, false},
		{"", 0, true},
		{"ten", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseValue(%q) = %d, %v", tt.in, got, err)
		}
	}
}
