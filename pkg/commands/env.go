package commands

import (
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"tableflip.dev/uikit/pkg/config"
	"tableflip.dev/uikit/pkg/logging"
	"tableflip.dev/uikit/pkg/skin"
)

// env is what every command needs before it mounts a page.
type env struct {
	cfg   config.Config
	log   *zap.Logger
	skins *skin.Registry
	// overrides names the skins read from the skins directory.
	overrides []string
}

func loadEnv(quiet bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg, logging.Options{Quiet: quiet})
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, log: log, skins: skin.Default()}

	dir := cfg.SkinsPath()
	if dir == "" {
		return e, nil
	}
	overlay := skin.New()
	if err := overlay.LoadDir(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no skins directory", zap.String("dir", dir))
			return e, nil
		}
		return nil, err
	}
	if err := e.skins.LoadDir(dir); err != nil {
		return nil, err
	}
	e.overrides = overlay.Names()
	log.Debug("override skins loaded", zap.String("dir", dir), zap.Strings("skins", e.overrides))
	return e, nil
}
