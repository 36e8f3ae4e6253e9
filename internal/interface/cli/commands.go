// Package cli exposes the engines as a terminal tool for trip planning
// without a running server.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yanqian/travel-wellness/internal/domain/exposure"
	"github.com/yanqian/travel-wellness/internal/domain/hydration"
	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
	"github.com/yanqian/travel-wellness/pkg/util"
)

// Services bundles the engines the commands call into.
type Services struct {
	JetLag    jetlag.Service
	Exposure  exposure.Service
	Hydration hydration.Service
}

type rootOptions struct {
	json    bool
	noColor bool
}

// NewRootCommand builds the travelctl command tree writing to out.
func NewRootCommand(svc Services, out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "travelctl",
		Short:         "Jet lag, heat exposure and hydration planning",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.noColor || opts.json {
				color.NoColor = true
			}
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of text")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	p := func() printer { return printer{out: out, json: opts.json} }
	cmd.AddCommand(
		newPlanCommand(svc.JetLag, p),
		newTZDiffCommand(svc.JetLag, p),
		newHeatCommand(svc.Exposure, p),
		newActivityCommand(svc.Exposure, p),
		newHydrateCommand(svc.Hydration, p),
	)
	return cmd
}

func newPlanCommand(svc jetlag.Service, p func() printer) *cobra.Command {
	var (
		req            jetlag.Request
		bedtime, wakes string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a sleep and light schedule for a trip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Bedtime, err = optionalClock(bedtime); err != nil {
				return err
			}
			if req.WakeTime, err = optionalClock(wakes); err != nil {
				return err
			}
			plan, err := svc.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			return p().plan(plan)
		},
	}
	cmd.Flags().StringVar(&req.OriginZone, "from", "", "Origin IANA timezone")
	cmd.Flags().StringVar(&req.DestinationZone, "to", "", "Destination IANA timezone")
	cmd.Flags().StringVar(&req.ReferenceTime, "at", "", "Reference instant (RFC3339), defaults to now")
	cmd.Flags().StringVar(&bedtime, "bedtime", "", "Usual bedtime HH:MM")
	cmd.Flags().StringVar(&wakes, "wake", "", "Usual wake time HH:MM")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newTZDiffCommand(svc jetlag.Service, p func() printer) *cobra.Command {
	var req jetlag.CompareRequest
	cmd := &cobra.Command{
		Use:   "tzdiff",
		Short: "Compare the UTC offsets of two timezones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			diff, err := svc.Compare(cmd.Context(), req)
			if err != nil {
				return err
			}
			return p().difference(diff)
		},
	}
	cmd.Flags().StringVar(&req.OriginZone, "from", "", "Origin IANA timezone")
	cmd.Flags().StringVar(&req.DestinationZone, "to", "", "Destination IANA timezone")
	cmd.Flags().StringVar(&req.ReferenceTime, "at", "", "Reference instant (RFC3339), defaults to now")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newHeatCommand(svc exposure.Service, p func() printer) *cobra.Command {
	var (
		req  exposure.ExtremeHeatRequest
		hour int
	)
	cmd := &cobra.Command{
		Use:   "heat",
		Short: "Heat index, or the combined UV and heat warning when --uv is set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("uv") {
				data, err := svc.HeatIndex(exposure.HeatIndexRequest{TemperatureC: req.TemperatureC, HumidityPct: req.HumidityPct})
				if err != nil {
					return err
				}
				return p().heatIndex(data)
			}
			if cmd.Flags().Changed("hour") {
				req.Hour = &hour
			}
			warning, err := svc.ExtremeHeat(req)
			if err != nil {
				return err
			}
			return p().extremeHeat(warning)
		},
	}
	cmd.Flags().Float64Var(&req.TemperatureC, "temp", 0, "Air temperature in °C")
	cmd.Flags().Float64Var(&req.HumidityPct, "humidity", 0, "Relative humidity in %")
	cmd.Flags().Float64Var(&req.UVIndex, "uv", 0, "UV index")
	cmd.Flags().IntVar(&hour, "hour", 0, "Local hour of day 0-23")
	_ = cmd.MarkFlagRequired("temp")
	_ = cmd.MarkFlagRequired("humidity")
	return cmd
}

func newActivityCommand(svc exposure.Service, p func() printer) *cobra.Command {
	var (
		req                    exposure.ActivityRequest
		scale, warn, intensity string
	)
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Decide whether outdoor activity is advisable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.AQIScale = exposure.AQIScale(scale)
			req.HeatWarning = exposure.HeatWarningLevel(warn)
			req.Intensity = exposure.ActivityIntensity(intensity)
			assessment, err := svc.Activity(req)
			if err != nil {
				return err
			}
			return p().activity(assessment)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&req.Reading.TemperatureC, "temp", 0, "Air temperature in °C")
	f.Float64Var(&req.Reading.HumidityPct, "humidity", 0, "Relative humidity in %")
	f.Float64Var(&req.Reading.WindSpeedMs, "wind", 0, "Wind speed in m/s")
	f.Float64Var(&req.Reading.VisibilityM, "visibility", 10000, "Visibility in metres")
	f.Float64Var(&req.Reading.CloudCoverPct, "cloud", 0, "Cloud cover in %")
	f.Float64Var(&req.Reading.UVIndex, "uv", 0, "UV index")
	f.Float64Var(&req.Reading.AQI, "aqi", 0, "Air quality index")
	f.StringVar(&scale, "aqi-scale", string(exposure.AQIScaleEPA), "AQI scale: "+joinNames([]exposure.AQIScale{exposure.AQIScaleEPA, exposure.AQIScaleQualitative}))
	f.StringVar(&warn, "warning", "", "Active heat warning: "+joinNames([]exposure.HeatWarningLevel{exposure.HeatWarningNone, exposure.HeatWarningModerate, exposure.HeatWarningHigh, exposure.HeatWarningExtreme}))
	f.StringVar(&intensity, "intensity", "", "Planned intensity: "+joinNames([]exposure.ActivityIntensity{exposure.IntensityLight, exposure.IntensityModerate, exposure.IntensityIntense}))
	_ = cmd.MarkFlagRequired("temp")
	_ = cmd.MarkFlagRequired("humidity")
	return cmd
}

func newHydrateCommand(svc hydration.Service, p func() printer) *cobra.Command {
	var (
		req      hydration.Request
		activity string
	)
	cmd := &cobra.Command{
		Use:   "hydrate",
		Short: "Estimate daily water intake",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.ActivityLevel = hydration.ActivityLevel(activity)
			rec, err := svc.Recommend(req)
			if err != nil {
				return err
			}
			return p().hydration(rec)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&req.BodyWeightKg, "weight", 0, "Body weight in kg")
	f.Float64Var(&req.TemperatureC, "temp", 20, "Air temperature in °C")
	f.Float64Var(&req.HumidityPct, "humidity", 50, "Relative humidity in %")
	f.Float64Var(&req.AltitudeM, "altitude", 0, "Altitude in metres")
	f.Float64Var(&req.WindSpeedMs, "wind", 0, "Wind speed in m/s")
	f.StringVar(&activity, "activity", string(hydration.ActivitySedentary), "Activity level: "+joinNames([]hydration.ActivityLevel{hydration.ActivitySedentary, hydration.ActivityLight, hydration.ActivityModerate, hydration.ActivityIntense}))
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

func optionalClock(raw string) (*util.ClockTime, error) {
	if raw == "" {
		return nil, nil
	}
	c, err := util.ParseClockTime(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid clock time: %w", err)
	}
	return &c, nil
}
