// Package framespecfx provides an fx module for a configured framespec codec.
package framespecfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/sequencekit/framespec"
	"github.com/sequencekit/framespec/internal/stats"
	"github.com/sequencekit/framespec/internal/stats/logger"
)

// Module provides a *framespec.Codec wired with the application's zap
// logger and a logger-backed stats collector.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("framespec",
	fx.Provide(
		newStatsCollector,
		newCodec,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("framespec.stats"))
}

// Params holds dependencies for creating the codec.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector

	// Options allows callers to supply extra codec options, e.g. a custom
	// step delimiter, via fx.Supply.
	Options []framespec.Option `optional:"true"`
}

// Result holds the provided codec.
type Result struct {
	fx.Out

	Codec *framespec.Codec
}

func newCodec(p Params) (Result, error) {
	opts := append([]framespec.Option{
		framespec.WithStats(p.Collector),
		framespec.WithLogger(p.Logger.Named("framespec")),
	}, p.Options...)

	codec, err := framespec.New(opts...)
	if err != nil {
		return Result{}, err
	}

	return Result{Codec: codec}, nil
}
