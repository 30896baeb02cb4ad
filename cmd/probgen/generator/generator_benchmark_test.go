package generator_test

import (
	"time"

	"github.com/onsi/gomega/gmeasure"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tlipoca9/probgen/cmd/probgen/generator"
	"github.com/tlipoca9/probgen/probkit"
)

// Benchmark tests for problem generation using Ginkgo's gmeasure
// Run with: go test -v ./cmd/probgen/generator/... -count=1

var _ = Describe("Benchmark", func() {
	var experiment *gmeasure.Experiment

	BeforeEach(func() {
		experiment = gmeasure.NewExperiment(CurrentSpecReport().LeafNodeText)
		AddReportEntry(experiment.Name, experiment)
	})

	Describe("Generate", func() {
		It("benchmarks a size 1000 chain", func() {
			gen := generator.New()
			experiment.SampleDuration("Generate/1000", func(_ int) {
				em := probkit.NewEmitter()
				p := em.NewProblem("bench.pl")
				_ = gen.Generate(p, 1000)
			}, gmeasure.SamplingConfig{N: 100}, gmeasure.Precision(time.Microsecond))

			stats := experiment.GetStats("Generate/1000")
			// 2002 formatted lines should stay well under a millisecond
			Expect(stats.DurationFor(gmeasure.StatMean)).To(BeNumerically("<", 10*time.Millisecond))
		})
	})
})
