package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/tsukumogami/pvlocate/internal/config"
	"github.com/tsukumogami/pvlocate/internal/log"
	"github.com/tsukumogami/pvlocate/internal/platform"
	"github.com/tsukumogami/pvlocate/internal/resource"
	"github.com/tsukumogami/pvlocate/internal/userconfig"
)

// resolvedRoot is the install root of the last loaded config, reported in
// error hints.
var resolvedRoot string

// printInfo prints an informational message unless --quiet is set.
func printInfo(a ...any) {
	if !quietFlag {
		fmt.Println(a...)
	}
}

// printInfof prints a formatted informational message unless --quiet is set.
func printInfof(format string, a ...any) {
	if !quietFlag {
		fmt.Printf(format, a...)
	}
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadConfig returns the environment config with command-line overrides applied.
func loadConfig() (*config.Config, error) {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return nil, err
	}

	cfg.InstallRoot = firstNonEmpty(rootFlag, cfg.InstallRoot)
	cfg.CPUInfoPath = firstNonEmpty(cpuInfoFlag, cfg.CPUInfoPath)
	cfg.LayoutFile = firstNonEmpty(layoutFlag, cfg.LayoutFile)
	cfg.OS = firstNonEmpty(osFlag, cfg.OS)
	cfg.Machine = firstNonEmpty(machineFlag, cfg.Machine)

	resolvedRoot = cfg.InstallRoot
	return cfg, nil
}

// resolveIdentity returns the platform to resolve for. A forced machine that
// already names a supported variant is used as is; any other forced machine
// is treated as a raw uname value and classified like the host's would be.
func resolveIdentity(cfg *config.Config) (platform.Identity, error) {
	goos := firstNonEmpty(cfg.OS, runtime.GOOS)

	if cfg.Machine != "" {
		osName, err := platform.ParseOS(goos)
		if err != nil {
			return platform.Identity{}, err
		}
		id := platform.NewIdentity(osName, cfg.Machine)
		if _, err := id.Class(); err == nil {
			log.Default().Info("using forced platform", "platform", id.String())
			return id, nil
		}
	}

	opts := []platform.Option{
		platform.WithGOOS(goos),
		platform.WithCPUInfoPath(cfg.CPUInfoPath),
		platform.WithLogger(log.Default()),
	}
	if cfg.Machine != "" {
		opts = append(opts, platform.WithMachine(cfg.Machine))
	}

	id, err := platform.Detect(opts...)
	if err != nil {
		return platform.Identity{}, err
	}
	log.Default().Info("detected platform", "platform", id.String())
	return id, nil
}

// newLocator builds a Locator for the configured install root and platform.
func newLocator(cfg *config.Config) (*resource.Locator, error) {
	id, err := resolveIdentity(cfg)
	if err != nil {
		return nil, err
	}

	layout, err := loadLayout(cfg)
	if err != nil {
		return nil, err
	}

	return resource.NewLocator(cfg.InstallRoot, id,
		resource.WithLayout(layout),
		resource.WithLogger(log.Default()),
	)
}

// loadLayout returns the layout override file if one is configured and the
// built-in layout otherwise.
func loadLayout(cfg *config.Config) (*resource.Layout, error) {
	if cfg.LayoutFile == "" {
		return resource.DefaultLayout(), nil
	}
	layout, err := resource.LoadLayout(cfg.LayoutFile)
	if err != nil {
		return nil, err
	}
	log.Default().Info("using layout override", "file", cfg.LayoutFile)
	return layout, nil
}

// loadSelection reads the selected context and keyword from the user config.
// Non-empty context or keyword arguments replace the stored values.
func loadSelection(cfg *config.Config, context, keyword string) (resource.Selection, error) {
	userCfg, err := userconfig.Load(cfg.ConfigFile)
	if err != nil {
		return resource.Selection{}, err
	}

	sel := userCfg.Selection()
	sel.Context = firstNonEmpty(context, sel.Context)
	sel.Keyword = firstNonEmpty(keyword, sel.Keyword)
	return sel, nil
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
var stdoutIsTerminal = func() bool {
	return isTerminal(os.Stdout)
}
