package integrators

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stocksim/internal/dynamo"
)

var _ = Describe("Schemes", func() {
	const dt = 0.01

	DescribeTable("agree with Euler when phi^2 equals dt",
		func(scheme dynamo.Scheme) {
			phi := math.Sqrt(dt)
			euler := NewEuler()

			Expect(scheme.StepStock(100, 0.3, 0.05, dt, phi)).
				To(BeNumerically("~", euler.StepStock(100, 0.3, 0.05, dt, phi), 1e-12))
			Expect(scheme.StepVol(0.3, 0.2, 0.4, dt, phi)).
				To(BeNumerically("~", euler.StepVol(0.3, 0.2, 0.4, dt, phi), 1e-12))
		},
		Entry("milstein", NewMilstein()),
		Entry("rk", NewRK()),
	)

	DescribeTable("leave the volatility unchanged when p is zero",
		func(scheme dynamo.Scheme) {
			for _, phi := range []float64{-0.3, 0, 0.05, 0.2} {
				Expect(scheme.StepVol(0.2, 0.1, 0, dt, phi)).To(Equal(0.2))
			}
		},
		Entry("euler", NewEuler()),
		Entry("milstein", NewMilstein()),
		Entry("rk", NewRK()),
	)

	DescribeTable("reduce to pure drift without stock volatility",
		func(scheme dynamo.Scheme) {
			Expect(scheme.StepStock(50, 0, 0.1, dt, 0.17)).To(BeNumerically("~", 50*(1+0.1*dt), 1e-12))
		},
		Entry("euler", NewEuler()),
		Entry("milstein", NewMilstein()),
		Entry("rk", NewRK()),
	)

	Describe("scheme sensitivity", func() {
		It("gives three distinct updates for a generic shock", func() {
			phi := 0.13
			e := NewEuler().StepStock(100, 0.2, 0.05, dt, phi)
			m := NewMilstein().StepStock(100, 0.2, 0.05, dt, phi)
			r := NewRK().StepStock(100, 0.2, 0.05, dt, phi)

			Expect(e).NotTo(Equal(m))
			Expect(m).NotTo(Equal(r))
			Expect(e).NotTo(Equal(r))
		})
	})

	Describe("XiRK4", func() {
		It("moves xi toward sigma", func() {
			integ := NewXiRK4()
			Expect(integ.StepXi(0.2, 0.1, 1, dt)).To(And(BeNumerically(">", 0.1), BeNumerically("<", 0.2)))
			Expect(integ.StepXi(0.2, 0.3, 1, dt)).To(And(BeNumerically("<", 0.3), BeNumerically(">", 0.2)))
		})

		It("is deterministic", func() {
			integ := NewXiRK4()
			Expect(integ.StepXi(0.21, 0.17, 2, dt)).To(Equal(integ.StepXi(0.21, 0.17, 2, dt)))
		})
	})
})
