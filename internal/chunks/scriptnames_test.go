package chunks

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/deepteams/shockwave/internal/container"
)

func TestDecodeScriptNames(t *testing.T) {
	var buf bytes.Buffer
	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], 2)
	buf.Write(u32[:])
	buf.WriteByte(2)
	buf.WriteString("go")
	buf.WriteByte(5)
	buf.WriteString("mouse")

	r := container.NewReader(buf.Bytes(), container.BigEndian)
	sn, err := DecodeScriptNames(r, 1, 0)
	if err != nil {
		t.Fatalf("DecodeScriptNames: %v", err)
	}
	if !sn.NonEmpty() {
		t.Error("NonEmpty() = false, want true")
	}
	if sn.Name(0) != "go" || sn.Name(1) != "mouse" {
		t.Errorf("Names = %v, want [go mouse]", sn.Names)
	}
	if got := sn.Name(5); got != "<unknown:5>" {
		t.Errorf("Name(5) = %q, want <unknown:5>", got)
	}
	if got := sn.Name(-1); got != "<unknown:-1>" {
		t.Errorf("Name(-1) = %q, want <unknown:-1>", got)
	}
}

func TestScriptNames_NonEmpty_FalseWhenEmpty(t *testing.T) {
	sn := &ScriptNames{}
	if sn.NonEmpty() {
		t.Error("NonEmpty() = true, want false for an empty table")
	}
}

func TestScriptNames_Kind(t *testing.T) {
	var sn ScriptNames
	if sn.Kind() != KindScriptNames {
		t.Fatalf("Kind() = %v, want KindScriptNames", sn.Kind())
	}
}
