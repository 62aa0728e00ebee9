package disk_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/phaniraghava1234/propeller-model/internal/disk"
	"github.com/phaniraghava1234/propeller-model/internal/rotor"
)

var _ = Describe("Model", func() {
	var (
		geom  rotor.Geometry
		flow  rotor.FlowConditions
		model *disk.Model
	)

	BeforeEach(func() {
		var err error
		geom, err = rotor.NewGeometry(0.254, 2, 0.2)
		Expect(err).NotTo(HaveOccurred())
		flow, err = rotor.NewFlowConditions(10.0, 5000.0, 1.225)
		Expect(err).NotTo(HaveOccurred())
		model, err = disk.New(geom)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("precomputes a strictly increasing grid from hub to tip", func() {
			r := model.Stations()
			Expect(r).To(HaveLen(disk.DefaultStations))
			Expect(r[0]).To(Equal(geom.HubRadius()))
			Expect(r[len(r)-1]).To(Equal(geom.Radius()))
			for i := 1; i < len(r); i++ {
				Expect(r[i]).To(BeNumerically(">", r[i-1]))
			}
		})

		It("rejects a grid too short to integrate over", func() {
			_, err := disk.NewWithConfig(geom, disk.Config{Stations: 1, TipLoss: 0.95, Swirl: 0.05})
			Expect(err).To(MatchError(disk.ErrStations))
		})

		It("accepts the two-station minimum", func() {
			m, err := disk.NewWithConfig(geom, disk.Config{Stations: 2, TipLoss: 0.95, Swirl: 0.05})
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Stations()).To(HaveLen(2))
		})

		It("rejects invalid geometry", func() {
			bad := rotor.Geometry{Diameter: -1, NumBlades: 2, HubRadiusRatio: 0.2}
			_, err := disk.New(bad)
			Expect(err).To(MatchError(rotor.ErrDiameter))
		})
	})

	Describe("ComputePerformance", func() {
		It("returns exact zeros for all-zero coefficients", func() {
			perf, err := model.ComputePerformance([]float64{0, 0, 0, 0, 0}, flow)
			Expect(err).NotTo(HaveOccurred())
			Expect(perf.Thrust).To(Equal(0.0))
			Expect(perf.Torque).To(Equal(0.0))
			Expect(perf.Power).To(Equal(0.0))
			for i := range perf.Loading {
				Expect(perf.Loading[i]).To(Equal(0.0))
				Expect(perf.Induced[i]).To(Equal(0.0))
			}
		})

		It("returns finite non-negative results for non-negative coefficients", func() {
			perf, err := model.ComputePerformance([]float64{0.5, 1.0, 3.0, 0.0, 0.7}, flow)
			Expect(err).NotTo(HaveOccurred())
			Expect(perf.Thrust).To(BeNumerically(">", 0))
			Expect(perf.Torque).To(BeNumerically(">", 0))
			Expect(perf.Power).To(BeNumerically(">", 0))
			for i := range perf.Loading {
				Expect(math.IsNaN(perf.Loading[i])).To(BeFalse())
				Expect(perf.Loading[i]).To(BeNumerically(">=", 0))
				Expect(perf.Induced[i]).To(BeNumerically(">=", 0))
			}
		})

		It("scales thrust and torque linearly with the coefficients", func() {
			base := []float64{0.5, 1.0, 3.0}
			k := 3.7
			scaled := make([]float64, len(base))
			for i, c := range base {
				scaled[i] = k * c
			}

			p1, err := model.ComputePerformance(base, flow)
			Expect(err).NotTo(HaveOccurred())
			pk, err := model.ComputePerformance(scaled, flow)
			Expect(err).NotTo(HaveOccurred())

			Expect(pk.Thrust / p1.Thrust).To(BeNumerically("~", k, 1e-10))
			Expect(pk.Torque / p1.Torque).To(BeNumerically("~", k, 1e-10))
		})

		It("tapers loading only outboard of 70% radius", func() {
			coeffs := []float64{1.0, 2.0}
			bare, err := disk.NewWithConfig(geom, disk.Config{Stations: disk.DefaultStations, TipLoss: 1.0, Swirl: disk.DefaultSwirl})
			Expect(err).NotTo(HaveOccurred())

			tapered, err := model.ComputePerformance(coeffs, flow)
			Expect(err).NotTo(HaveOccurred())
			untapered, err := bare.ComputePerformance(coeffs, flow)
			Expect(err).NotTo(HaveOccurred())

			r := model.Stations()
			tip := geom.Radius()
			for i := range r {
				if r[i]/tip <= 0.7 {
					Expect(tapered.Loading[i]).To(Equal(untapered.Loading[i]))
				} else {
					Expect(tapered.Loading[i]).To(BeNumerically("<", untapered.Loading[i]))
				}
			}
		})

		It("stays finite at hover", func() {
			hover, err := rotor.NewFlowConditions(0.0, 5000.0, 1.225)
			Expect(err).NotTo(HaveOccurred())

			perf, err := model.ComputePerformance([]float64{1.0, 1.0}, hover)
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsNaN(perf.Thrust) || math.IsInf(perf.Thrust, 0)).To(BeFalse())
			Expect(math.IsNaN(perf.Power) || math.IsInf(perf.Power, 0)).To(BeFalse())
			for i := range perf.Induced {
				Expect(math.IsNaN(perf.Induced[i]) || math.IsInf(perf.Induced[i], 0)).To(BeFalse())
			}
		})

		It("reproduces the reference operating point", func() {
			// APC-class rotor, elliptic-family loading at 5000 rpm.
			perf, err := model.ComputePerformance([]float64{0.5, 1.0, 3.0, -1.5, 0.0}, flow)
			Expect(err).NotTo(HaveOccurred())
			Expect(perf.Thrust).To(BeNumerically("~", 2.918481318165, 1e-8))
			Expect(perf.Torque).To(BeNumerically("~", 0.098913471824, 1e-9))
			Expect(perf.Power).To(BeNumerically("~", 87.560469075801, 1e-6))
		})

		It("clamps negative loading to zero before integration", func() {
			// c0 < 0 makes the polynomial negative inboard
			perf, err := model.ComputePerformance([]float64{-5.0, 4.0}, flow)
			Expect(err).NotTo(HaveOccurred())
			for i := range perf.Loading {
				Expect(perf.Loading[i]).To(BeNumerically(">=", 0))
			}
			Expect(perf.Thrust).To(BeNumerically(">=", 0))
		})

		It("rejects invalid flow conditions", func() {
			bad := rotor.FlowConditions{VelocityInf: 10, RPM: 0, Rho: 1.225}
			_, err := model.ComputePerformance([]float64{1}, bad)
			Expect(err).To(MatchError(rotor.ErrRPM))
		})
	})
})
