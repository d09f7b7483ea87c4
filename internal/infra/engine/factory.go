// Package engine provides media engine implementations for playback sessions.
package engine

import (
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/gramaria/internal/app/playback"
	"github.com/osa030/gramaria/internal/infra/config"
)

// Errors
var (
	ErrEngineClosed     = errors.New("engine is closed")
	ErrAudioUnavailable = errors.New("audio output is not available in this build")
)

// Command ops forwarded to a client-side engine.
const (
	OpLoad       = "load"
	OpPlay       = "play"
	OpPause      = "pause"
	OpSeek       = "seek"
	OpVolume     = "volume"
	OpAutoRepeat = "auto_repeat"
)

// Command is an engine instruction that has to be carried out elsewhere.
type Command struct {
	Op         string
	Generation uint64
	Source     string
	Seconds    float64
	Volume     float64
	Enabled    bool
}

// CommandSink receives commands from a remote engine. It is called while
// the controller lock is held and must not block.
type CommandSink func(Command)

// Factory creates one engine per playback session.
type Factory interface {
	Type() string
	New(sink CommandSink) (playback.Engine, error)
}

// TypeInfo describes a supported engine type.
type TypeInfo struct {
	Name        string
	Description string
}

// Types returns the supported engine types.
func Types() []TypeInfo {
	return []TypeInfo{
		{Name: config.EngineLocal, Description: "decodes mp3 and plays through the host speaker"},
		{Name: config.EngineSimulated, Description: "wall-clock driven engine without audio output"},
		{Name: config.EngineRemote, Description: "forwards commands to the client, which reports back"},
	}
}

// NewFactory creates the engine factory selected by cfg.Type.
func NewFactory(cfg config.EngineConfig) (Factory, error) {
	zlog.Debug().Msgf("creating engine factory: type=%s settings=%+v", cfg.Type, cfg.Settings)

	switch cfg.Type {
	case config.EngineLocal:
		var s LocalSettings
		if err := decodeSettings(cfg.Settings, &s); err != nil {
			return nil, errors.Wrapf(err, "invalid %s engine settings", cfg.Type)
		}
		return &localFactory{settings: s}, nil

	case config.EngineSimulated:
		var s SimulatedSettings
		if err := decodeSettings(cfg.Settings, &s); err != nil {
			return nil, errors.Wrapf(err, "invalid %s engine settings", cfg.Type)
		}
		return &simulatedFactory{settings: s}, nil

	case config.EngineRemote:
		return remoteFactory{}, nil

	default:
		return nil, errors.Newf("unsupported engine type: %s", cfg.Type)
	}
}

func decodeSettings(settings map[string]any, out any) error {
	if err := mapstructure.Decode(settings, out); err != nil {
		return errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(out); err != nil {
		return errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(out); err != nil {
		return errors.Wrap(err, "validation failed")
	}
	return nil
}

type simulatedFactory struct {
	settings SimulatedSettings
}

func (f *simulatedFactory) Type() string { return config.EngineSimulated }

func (f *simulatedFactory) New(CommandSink) (playback.Engine, error) {
	return NewSimulated(f.settings), nil
}

type remoteFactory struct{}

func (remoteFactory) Type() string { return config.EngineRemote }

func (remoteFactory) New(sink CommandSink) (playback.Engine, error) {
	if sink == nil {
		return nil, errors.New("remote engine requires a command sink")
	}
	return NewRemote(sink), nil
}

type localFactory struct {
	settings LocalSettings
}

func (f *localFactory) Type() string { return config.EngineLocal }

func (f *localFactory) New(CommandSink) (playback.Engine, error) {
	return NewLocal(f.settings), nil
}
