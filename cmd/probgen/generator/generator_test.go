package generator_test

import (
	"fmt"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tlipoca9/probgen/cmd/probgen/generator"
	"github.com/tlipoca9/probgen/probkit"
)

func TestGenerator(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Induction Generator Suite")
}

// emit runs the generator and returns the emitted problem.
func emit(size int) *probkit.Problem {
	em := probkit.NewEmitter()
	p := em.NewProblem("induction.pl")
	Expect(generator.New().Generate(p, size)).To(Succeed())
	return p
}

var _ = Describe("Generator", func() {
	var (
		gen *generator.Generator
	)

	BeforeEach(func() {
		gen = generator.New()
	})

	Describe("New", func() {
		It("should create a new generator", func() {
			Expect(generator.New()).NotTo(BeNil())
		})
	})

	Describe("Name", func() {
		It("should return the correct tool name", func() {
			Expect(gen.Name()).To(Equal("induction"))
		})
	})

	Describe("Generate", func() {
		It("should emit only the base facts for size zero", func() {
			p := emit(0)
			Expect(string(p.Content())).To(Equal("p(n0).\nq(n0).\n"))
			Expect(p.Lines()).To(Equal(2))
		})

		It("should emit the exact chain for size two", func() {
			p := emit(2)
			Expect(string(p.Content())).To(Equal(strings.Join([]string{
				"p(n1) :- p(n0), q(n1).",
				"q(n1) :- p(n0), q(n0).",
				"p(n2) :- p(n1), q(n2).",
				"q(n2) :- p(n1), q(n1).",
				"p(n0).",
				"q(n0).",
				"",
			}, "\n")))
		})

		It("should emit 2*size+2 lines", func() {
			for _, size := range []int{0, 1, 5, 50, 1000} {
				p := emit(size)
				Expect(p.Lines()).To(Equal(2*size+2), "size %d", size)
			}
		})

		It("should emit the correct rule pair for every index", func() {
			const size = 7
			p := emit(size)
			lines := strings.Split(strings.TrimSuffix(string(p.Content()), "\n"), "\n")
			Expect(lines).To(HaveLen(2*size + 2))
			for i := 0; i < size; i++ {
				Expect(lines[2*i]).To(Equal(
					fmt.Sprintf("p(n%d) :- p(n%d), q(n%d).", i+1, i, i+1)))
				Expect(lines[2*i+1]).To(Equal(
					fmt.Sprintf("q(n%d) :- p(n%d), q(n%d).", i+1, i, i)))
			}
		})

		It("should always close with the base facts", func() {
			for _, size := range []int{0, 1, 13} {
				p := emit(size)
				lines := strings.Split(strings.TrimSuffix(string(p.Content()), "\n"), "\n")
				Expect(lines[len(lines)-2]).To(Equal("p(n0)."))
				Expect(lines[len(lines)-1]).To(Equal("q(n0)."))
			}
		})

		It("should be deterministic", func() {
			Expect(emit(42).Content()).To(Equal(emit(42).Content()))
		})

		It("should treat a negative size as the degenerate problem", func() {
			p := emit(-3)
			Expect(string(p.Content())).To(Equal("p(n0).\nq(n0).\n"))
		})

		It("should use plain decimal indices without padding", func() {
			p := emit(11)
			Expect(string(p.Content())).To(ContainSubstring("p(n10) :- p(n9), q(n10)."))
			Expect(string(p.Content())).NotTo(ContainSubstring("n09"))
		})
	})
})
