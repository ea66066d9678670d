// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Moves the tracker documents from one backend to another.
package main

import (
	"fmt"
	"strings"

	"github.com/DLAppStuff/GymAppTest/internal/charm"
	"github.com/DLAppStuff/GymAppTest/internal/config"
	"github.com/DLAppStuff/GymAppTest/internal/storage"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateDryRun bool
	migrateForce  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data between storage backends",
	Long: `Copy gym data from one storage backend to another.

BACKENDS:

  sqlite   ~/.local/share/gym/gym.db (default)
  badger   ~/.local/share/gym/badger/
  file     ~/.local/share/gym/json/
  charm    Charm KV, synced to Charm Cloud

IMPORTANT:

  - Existing data in the destination is NOT overwritten unless --force is given
  - Run with --dry-run first to see what would be copied
  - The active backend is not changed; run 'gym config set backend <name>' after

USAGE:

  gym migrate --from sqlite --to charm --dry-run   # Preview
  gym migrate --from sqlite --to charm             # Copy
  gym config set backend charm                     # Switch`,
	Annotations: map[string]string{skipTracker: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == migrateTo {
			return fmt.Errorf("--from and --to must differ")
		}

		base, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		src, err := openBackend(base, migrateFrom)
		if err != nil {
			return err
		}
		defer src.Close()

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
			for _, key := range storage.AllKeys {
				value, err := src.Get(key)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", key, err)
				}
				if value == nil {
					fmt.Printf("  %s %s\n", padRight(key, 16), faint.Sprint("(empty)"))
					continue
				}
				fmt.Printf("  %s %d bytes\n", padRight(key, 16), len(value))
			}
			return nil
		}

		dst, err := openBackend(base, migrateTo)
		if err != nil {
			return err
		}
		defer dst.Close()

		hasData, err := storage.HasData(dst, storage.AllKeys)
		if err != nil {
			return fmt.Errorf("failed to check destination: %w", err)
		}
		if hasData && !migrateForce {
			return fmt.Errorf("%s backend already has data (use --force to overwrite)", migrateTo)
		}

		// One sync after the copy instead of one per document.
		remote, isCharm := dst.(*charm.Client)
		if isCharm {
			remote.SetAutoSync(false)
		}

		fmt.Printf("Copying %s → %s...\n", migrateFrom, migrateTo)
		summary, err := storage.MigrateData(src, dst, storage.AllKeys)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		if isCharm {
			if err := remote.Sync(); err != nil {
				color.Yellow("⚠ Copied locally but sync failed: %v", err)
			}
		}

		color.Green("✓ Migration complete")
		fmt.Printf("  Documents copied: %d\n", summary.Keys)
		fmt.Printf("  Bytes copied: %d\n", summary.Bytes)
		if db, ok := dst.(*storage.SQLiteStore); ok {
			fmt.Printf("  Database: %s\n", db.Path())
		}
		fmt.Println()
		fmt.Printf("Run 'gym config set backend %s' to switch.\n", migrateTo)
		return nil
	},
}

func openBackend(base *config.Config, backend string) (storage.Store, error) {
	c := *base
	if err := c.Set("backend", backend); err != nil {
		return nil, err
	}
	s, err := c.OpenStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", backend, err)
	}
	return s, nil
}

func init() {
	backends := strings.Join(config.Backends, ", ")
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "sqlite", "source backend ("+backends+")")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend ("+backends+")")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite existing data in the destination")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
