package gridlock_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

func TestPkg(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gridlock Suite")
}

func grid(rows ...string) gridlock.Grid {
	var g gridlock.Grid
	for i, row := range rows {
		for j, ch := range row {
			if ch >= '1' && ch <= '9' {
				g[i][j] = gridlock.Digit(ch - '0')
			}
		}
	}
	return g
}

var solved = grid(
	"123456789",
	"456789123",
	"789123456",
	"231564897",
	"564897231",
	"897231564",
	"312645978",
	"645978312",
	"978312645",
)

var _ = Describe("Digit", func() {
	It("should accept 1 through 9", func() {
		for d := gridlock.Digit(1); d <= 9; d++ {
			Expect(d.IsDigit()).To(BeTrue())
		}
	})
	It("should reject the empty sentinel and out-of-range values", func() {
		Expect(gridlock.Empty.IsDigit()).To(BeFalse())
		Expect(gridlock.Digit(10).IsDigit()).To(BeFalse())
	})
})

var _ = Describe("Grid", func() {
	Describe("Complete", func() {
		It("should report a filled grid", func() {
			Expect(solved.Complete()).To(BeTrue())
		})
		It("should report a grid with a hole", func() {
			g := solved
			g[4][4] = gridlock.Empty
			Expect(g.Complete()).To(BeFalse())
		})
	})

	Describe("Valid", func() {
		It("should accept a correct solution", func() {
			Expect(solved.Valid()).To(BeTrue())
		})
		It("should reject an incomplete grid", func() {
			g := solved
			g[0][0] = gridlock.Empty
			Expect(g.Valid()).To(BeFalse())
		})
		It("should reject a duplicated digit", func() {
			g := solved
			g[0][0] = g[0][1]
			Expect(g.Valid()).To(BeFalse())
		})
	})

	Describe("String", func() {
		It("should render digits and empty cells", func() {
			g := solved
			g[0][2] = gridlock.Empty
			rendered := g.String()
			Expect(rendered).To(HavePrefix("+-------+-------+-------+\n| 1 2 - | 4 5 6 | 7 8 9 |"))
			Expect(rendered).To(HaveSuffix("+-------+-------+-------+"))
			Expect(strings.Count(rendered, "+-------+-------+-------+")).To(Equal(4))
		})
	})
})
