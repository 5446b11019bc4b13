// Public domain.

package sip_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/fitswcs/header"
	"github.com/soniakeys/fitswcs/sip"
)

func card(key, value string) string {
	return fmt.Sprintf("%-8s= %-70s", key, value)
}

func mustParse(t *testing.T, cards ...string) *header.Header {
	t.Helper()
	blob := ""
	for _, c := range cards {
		blob += c
	}
	h, err := header.Parse(blob)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func axes() []string {
	return []string{card("NAXIS1", "100"), card("NAXIS2", "200")}
}

func TestCoeffCount(t *testing.T) {
	// (n+1)(n+2)/2 coefficients for declared order n
	for n := 0; n <= 5; n++ {
		cards := append(axes(),
			card("A_ORDER", strconv.Itoa(n)),
			card("B_ORDER", strconv.Itoa(n)))
		m, err := sip.Parse(mustParse(t, cards...), 0, 0)
		if err != nil {
			t.Fatal(n, err)
		}
		want := (n + 1) * (n + 2) / 2
		if len(m.A.C) != want || len(m.B.C) != want {
			t.Fatal(n, "counts:", len(m.A.C), len(m.B.C))
		}
	}
}

func TestForwardRequired(t *testing.T) {
	cards := append(axes(), card("A_ORDER", "2"))
	_, err := sip.Parse(mustParse(t, cards...), 0, 0)
	var mk *header.MissingKeyword
	if !errors.As(err, &mk) || mk.Keyword != "B_ORDER" {
		t.Fatal("want MissingKeyword B_ORDER, got", err)
	}
	cards = append(axes(), card("B_ORDER", "2"))
	_, err = sip.Parse(mustParse(t, cards...), 0, 0)
	if !errors.As(err, &mk) || mk.Keyword != "A_ORDER" {
		t.Fatal("want MissingKeyword A_ORDER, got", err)
	}
}

func TestInversePairing(t *testing.T) {
	fwd := append(axes(),
		card("A_ORDER", "1"),
		card("B_ORDER", "1"))
	// a lone AP_ORDER yields an absent inverse model, not a partial one
	m, err := sip.Parse(mustParse(t, append(fwd, card("AP_ORDER", "1"))...), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m.Inverse() || m.AP != nil || m.BP != nil {
		t.Fatal("partial inverse retained")
	}
	m, err = sip.Parse(mustParse(t, append(fwd,
		card("AP_ORDER", "1"),
		card("BP_ORDER", "1"))...), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Inverse() || m.AP == nil || m.BP == nil {
		t.Fatal("inverse missing")
	}
}

func TestAt(t *testing.T) {
	cards := append(axes(),
		card("A_ORDER", "2"),
		card("B_ORDER", "2"),
		card("A_0_2", "0.3"),
		card("A_1_1", "0.5"),
		card("A_2_0", "0.7"))
	m, err := sip.Parse(mustParse(t, cards...), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		i, j int
		want float64
	}{
		{0, 0, 0}, {0, 1, 0}, {0, 2, 0.3},
		{1, 0, 0}, {1, 1, 0.5},
		{2, 0, 0.7},
	} {
		if got := m.A.At(c.i, c.j); got != c.want {
			t.Fatal("A", c.i, c.j, "=", got)
		}
	}
}

func TestRect(t *testing.T) {
	cards := append(axes(),
		card("A_ORDER", "0"),
		card("B_ORDER", "0"))
	m, err := sip.Parse(mustParse(t, cards...), 10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if m.UMin != -10 || m.UMax != 90 || m.VMin != -20 || m.VMax != 180 {
		t.Fatal("rect:", m.UMin, m.UMax, m.VMin, m.VMax)
	}
}

func TestMissingAxes(t *testing.T) {
	cards := []string{
		card("A_ORDER", "0"),
		card("B_ORDER", "0"),
		card("NAXIS2", "200"),
	}
	_, err := sip.Parse(mustParse(t, cards...), 0, 0)
	var mk *header.MissingKeyword
	if !errors.As(err, &mk) || mk.Keyword != "NAXIS1" {
		t.Fatal("want MissingKeyword NAXIS1, got", err)
	}
}

func TestRandomGrid(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	const n = 3
	cards := append(axes(),
		card("A_ORDER", strconv.Itoa(n)),
		card("B_ORDER", strconv.Itoa(n)))
	want := map[[2]int]float64{}
	for i := 0; i <= n; i++ {
		for j := 0; j <= n-i; j++ {
			v := rnd.Float64()*2 - 1
			want[[2]int{i, j}] = v
			cards = append(cards, card(fmt.Sprintf("A_%d_%d", i, j),
				strconv.FormatFloat(v, 'g', 17, 64)))
		}
	}
	m, err := sip.Parse(mustParse(t, cards...), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for ij, v := range want {
		if got := m.A.At(ij[0], ij[1]); got != v {
			t.Fatal("A", ij, "=", got, "want", v)
		}
	}
}
