package solve_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/puzzle-framework/gridlock/cmd/solve"
	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

func TestSolve(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Solve Suite")
}

const classicPuzzle = `5 3 - - 7 - - - -
6 - - 1 9 5 - - -
- 9 8 - - - - 6 -
8 - - - 6 - - - 3
4 - - 8 - 3 - - 1
7 - - - 2 - - - 6
- 6 - - - - 2 8 -
- - - 4 1 9 - - 5
- - - - 8 - - 7 9
`

var _ = Describe("ParseGrid", func() {
	It("should parse a valid puzzle", func() {
		grid, err := solve.ParseGrid(bytes.NewReader([]byte(classicPuzzle)))
		Expect(err).ToNot(HaveOccurred())
		Expect(grid[0][0]).To(Equal(gridlock.Digit(5)))
		Expect(grid[0][2]).To(Equal(gridlock.Empty))
		Expect(grid[8][8]).To(Equal(gridlock.Digit(9)))
	})
	It("should skip blank lines", func() {
		padded := strings.ReplaceAll(classicPuzzle, "\n", "\n\n")
		grid, err := solve.ParseGrid(bytes.NewReader([]byte(padded)))
		Expect(err).ToNot(HaveOccurred())
		Expect(grid[1][3]).To(Equal(gridlock.Digit(1)))
	})
	It("should fail on too few rows", func() {
		_, err := solve.ParseGrid(bytes.NewReader([]byte("1 2 3 4 5 6 7 8 9\n")))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("expected 9 rows"))
	})
	It("should fail on too many rows", func() {
		_, err := solve.ParseGrid(bytes.NewReader([]byte(classicPuzzle + "- - - - - - - - -\n")))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("more than 9 rows"))
	})
	It("should fail on a short row", func() {
		short := strings.Replace(classicPuzzle, "5 3 - - 7 - - - -", "5 3 - - 7", 1)
		_, err := solve.ParseGrid(bytes.NewReader([]byte(short)))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("expected 9 cells"))
	})
	It("should fail on an invalid symbol", func() {
		bad := strings.Replace(classicPuzzle, "5 3 - - 7 - - - -", "5 3 - - 7 - - - x", 1)
		_, err := solve.ParseGrid(bytes.NewReader([]byte(bad)))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("expected - or a digit 1-9"))
	})
	It("should fail on zero", func() {
		bad := strings.Replace(classicPuzzle, "5 3 - - 7 - - - -", "5 3 - - 7 - - - 0", 1)
		_, err := solve.ParseGrid(bytes.NewReader([]byte(bad)))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on multi-character tokens", func() {
		bad := strings.Replace(classicPuzzle, "5 3 - - 7 - - - -", "53 - - 7 - - - - -", 1)
		_, err := solve.ParseGrid(bytes.NewReader([]byte(bad)))
		Expect(err).To(HaveOccurred())
	})
})
