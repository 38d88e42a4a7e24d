package languages

import (
	"errors"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b     Language
		expected bool
	}{
		{Language{Code: "en", Name: "English"}, Language{Code: "en", Name: "İngilizce"}, true},
		{Language{Code: "en"}, Language{Code: "EN"}, true},
		{Language{Code: "en", Flag: "🇬🇧"}, Language{Code: "tr", Flag: "🇬🇧"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.a.Code+"="+tt.b.Code, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	l, ok := Lookup(" TR ")
	if !ok {
		t.Fatal("Lookup(TR) not found")
	}
	if l.Code != "tr" || l.Name != "Türkçe" {
		t.Errorf("Lookup(TR) = %+v", l)
	}

	if _, ok := Lookup("ru"); ok {
		t.Error("Lookup(ru) should not be found")
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	langs := Supported()
	langs[0].Code = "xx"
	if Supported()[0].Code == "xx" {
		t.Error("Supported() exposed the internal slice")
	}
}

func TestRouteFor(t *testing.T) {
	tests := []struct {
		source, target string
		method         Method
		steps          []Step
	}{
		{"en", "en", MethodSame, nil},
		{"en", "tr", MethodDirect, []Step{{"en", "tr"}}},
		{"TR", "en", MethodDirect, []Step{{"tr", "en"}}},
		{"de", "fr", MethodDirect, []Step{{"de", "fr"}}},
		{"es", "de", MethodDirect, []Step{{"es", "de"}}},
		{"tr", "de", MethodBridge, []Step{{"tr", "en"}, {"en", "de"}}},
		{"fr", "tr", MethodBridge, []Step{{"fr", "en"}, {"en", "tr"}}},
	}

	for _, tt := range tests {
		t.Run(tt.source+"→"+tt.target, func(t *testing.T) {
			route, err := RouteFor(tt.source, tt.target)
			if err != nil {
				t.Fatalf("RouteFor(%q, %q) error: %v", tt.source, tt.target, err)
			}
			if route.Method != tt.method {
				t.Errorf("method = %q, want %q", route.Method, tt.method)
			}
			if len(route.Steps) != len(tt.steps) {
				t.Fatalf("steps = %v, want %v", route.Steps, tt.steps)
			}
			for i := range tt.steps {
				if route.Steps[i] != tt.steps[i] {
					t.Errorf("step %d = %v, want %v", i, route.Steps[i], tt.steps[i])
				}
			}
		})
	}
}

func TestRouteForUnsupported(t *testing.T) {
	for _, pair := range [][2]string{{"ru", "en"}, {"en", "zh"}, {"", "en"}} {
		_, err := RouteFor(pair[0], pair[1])
		if !errors.Is(err, ErrUnsupportedPair) {
			t.Errorf("RouteFor(%q, %q) error = %v, want ErrUnsupportedPair", pair[0], pair[1], err)
		}
	}
}

func TestPairs(t *testing.T) {
	pairs := Pairs()
	// 5 languages, every distinct ordered pair is routable
	if len(pairs) != 20 {
		t.Fatalf("len(Pairs()) = %d, want 20", len(pairs))
	}

	bridges := 0
	for _, p := range pairs {
		if p.Source.Equal(p.Target) {
			t.Errorf("pair %s→%s repeats a language", p.Source.Code, p.Target.Code)
		}
		if p.Method == MethodBridge {
			bridges++
		}
	}
	// tr is only directly connected to en
	if bridges != 6 {
		t.Errorf("bridge pairs = %d, want 6", bridges)
	}
}
