package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/keraunic-tonic/friendship/internal/adapters/fs"
	"github.com/keraunic-tonic/friendship/internal/adapters/sqlite"
	"github.com/keraunic-tonic/friendship/internal/cliconfig"
	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

const helpDescription = `
Manage save files for The Power of Friendship from the command line.

Highlights:
  - Lists, inspects, renames, and deletes save slots without starting the game.
  - Copies slots in from a second save directory (old installs, sync folders).
  - Works against the save directory or a SQLite save database.
  - Configure via file ($HOME/.friendship/config.toml), FRIENDSHIP_* env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  friendship list --save-dir ~/.friendship/saves
  friendship inspect 3 --save-dir ~/.friendship/saves
  friendship import 2 --save-dir ~/.friendship/saves --import-dir /mnt/sync/saves
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "friendship",
		Short:   "Manage save files for The Power of Friendship",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first, then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			return cfg.Validate()
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.friendship/config.toml)")
	root.PersistentFlags().StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "save directory")
	root.PersistentFlags().StringVar(&cfg.ImportDir, "import-dir", cfg.ImportDir, "second save directory to import slots from")
	root.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite save database (used instead of save-dir)")
	root.PersistentFlags().IntVar(&cfg.ProfileID, "profile", cfg.ProfileID, "player profile")
	root.PersistentFlags().BoolVar(&cfg.SortByUpdateTime, "by-date", cfg.SortByUpdateTime, "order listings newest-first instead of by slot")

	root.AddCommand(
		listCmd(&cfg),
		inspectCmd(&cfg),
		renameCmd(&cfg),
		deleteCmd(&cfg),
		importCmd(&cfg),
	)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("friendship")
		os.Exit(1)
	}
}

// openStore opens the configured backend: SQLite when --db is set, the
// filesystem store otherwise.
func openStore(cfg *cliconfig.Config) (ports.SaveStore, error) {
	if cfg.DBPath != "" {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open save database: %w", err)
		}
		return store, nil
	}
	return fs.NewSaveStore(cfg.SaveDir), nil
}

func parseSlot(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil || slot < 0 {
		return 0, fmt.Errorf("invalid slot %q", arg)
	}
	return slot, nil
}

func listCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List save slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			descs, err := store.List(cmd.Context(), cfg.ProfileID)
			if err != nil {
				return fmt.Errorf("list saves: %w", err)
			}
			if cfg.SortByUpdateTime {
				sort.SliceStable(descs, func(i, j int) bool {
					return descs[i].UpdatedAt.After(descs[j].UpdatedAt)
				})
			} else {
				sort.SliceStable(descs, func(i, j int) bool {
					return descs[i].SlotID < descs[j].SlotID
				})
			}

			if len(descs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saves")
				return nil
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-6s %-24s %-20s %s\n", "SLOT", "LABEL", "UPDATED", "SCREENSHOT")
			for _, d := range descs {
				shot := "-"
				if d.HasScreenshot {
					shot = "yes"
				}
				fmt.Fprintf(w, "%-6d %-24s %-20s %s\n",
					d.SlotID, d.DisplayLabel(), d.UpdatedAt.Format("2006-01-02 15:04:05"), shot)
			}
			return nil
		},
	}
}

func inspectCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <slot>",
		Short: "Show what a save slot contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			blob, err := store.Read(cmd.Context(), slot, cfg.ProfileID)
			if err != nil {
				return fmt.Errorf("read slot %d: %w", slot, err)
			}
			snap, err := domain.DecodeSnapshot(string(blob))
			if err != nil {
				return fmt.Errorf("decode slot %d: %w", slot, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "slot:      %d\n", slot)
			fmt.Fprintf(w, "player:    %d (%s)\n", snap.Main.CurrentPlayerID, snap.Main.MovementMethod)
			fmt.Fprintf(w, "scene:     %s\n", snap.Main.CurrentScene)
			fmt.Fprintf(w, "language:  %d\n", snap.Main.LanguageIndex)
			owners := make([]string, 0, len(snap.Main.Fragments))
			for _, f := range snap.Main.Fragments {
				owners = append(owners, f.Owner)
			}
			fmt.Fprintf(w, "fragments: %s\n", strings.Join(owners, ", "))
			fmt.Fprintf(w, "scenes:    %d\n", len(snap.Scenes))
			return nil
		},
	}
}

func renameCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <slot> <label>",
		Short: "Change a save slot's label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			if err := store.SetLabel(cmd.Context(), slot, cfg.ProfileID, args[1]); err != nil {
				return fmt.Errorf("rename slot %d: %w", slot, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "slot %d renamed to %q\n", slot, args[1])
			return nil
		},
	}
}

func deleteCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slot>",
		Short: "Delete a save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), slot, cfg.ProfileID); err != nil {
				return fmt.Errorf("delete slot %d: %w", slot, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "slot %d deleted\n", slot)
			return nil
		},
	}
}

func importCmd(cfg *cliconfig.Config) *cobra.Command {
	var fromProfile int
	cmd := &cobra.Command{
		Use:   "import <slot>",
		Short: "Copy a save slot in from the import directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			if cfg.ImportDir == "" {
				return fmt.Errorf("import-dir is required")
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			return importSlot(cmd.Context(), store, cfg, slot, fromProfile, cmd)
		},
	}
	cmd.Flags().IntVar(&fromProfile, "from-profile", 0, "profile to import from")
	return cmd
}

func importSlot(ctx context.Context, store ports.SaveStore, cfg *cliconfig.Config, slot, fromProfile int, cmd *cobra.Command) error {
	importStore := fs.NewSaveStore(cfg.ImportDir)

	blob, err := importStore.Read(ctx, slot, fromProfile)
	if err != nil {
		return fmt.Errorf("read import slot %d: %w", slot, err)
	}
	if _, err := domain.DecodeSnapshot(string(blob)); err != nil {
		return fmt.Errorf("decode import slot %d: %w", slot, err)
	}

	desc := domain.SaveDescriptor{
		SlotID:     slot,
		ProfileID:  cfg.ProfileID,
		IsAutosave: slot == domain.AutosaveSlot,
	}
	if descs, err := importStore.List(ctx, fromProfile); err == nil {
		for _, d := range descs {
			if d.SlotID == slot {
				desc.Label = d.Label
				desc.UpdatedAt = d.UpdatedAt
				break
			}
		}
	}

	if err := store.Write(ctx, desc, blob); err != nil {
		return fmt.Errorf("write slot %d: %w", slot, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "slot %d imported\n", slot)
	return nil
}
