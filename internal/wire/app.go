package wire

import (
	"context"

	"github.com/spf13/viper"

	"github.com/mithrel/mdtidy/internal/config"
)

// App aggregates the resolved configuration for easy injection.
type App struct {
	Cfg config.Settings
	V   *viper.Viper
}

// BuildApp validates the loaded Viper and resolves Settings from it.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}
	return &App{
		Cfg: config.FromViper(v),
		V:   v,
	}, nil
}
