package evalbuilder

import "testing"

func TestGet(t *testing.T) {
	for _, key := range []string{"", "runlength", "material"} {
		var builder, err = Get(key)
		if err != nil {
			t.Error(key, err)
			continue
		}
		if builder() == nil {
			t.Error(key, "nil evaluator")
		}
	}
	if _, err := Get("nnue"); err == nil {
		t.Error("unknown eval must fail")
	}
}
