// gencatalog validates the instruction tables in package catalog and writes
// the generated encoder packages under tier/.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/colorfulnotion/dasm/catalog"
	log "github.com/colorfulnotion/dasm/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
	"github.com/xyproto/env/v2"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "gencatalog",
		Short: "Generate and inspect the dasm instruction catalog",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		logLevel string
		debug    string
		outDir   string
		verbose  bool
		tierName string
	)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", env.Str("DASM_LOG_LEVEL", "info"), "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&debug, "debug", env.Str("DASM_DEBUG"), "comma separated modules with trace/debug logging enabled")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		log.InitLogger(logLevel)
		log.EnableModules(debug)
	}

	var genCmd = &cobra.Command{
		Use:   "gen",
		Short: "Validate the tables and write every generated file",
		Run: func(cmd *cobra.Command, args []string) {
			if err := check(); err != nil {
				log.Crit(log.CatalogGen, "catalog check failed", "err", err)
			}
			written, err := generate(outDir)
			if err != nil {
				log.Crit(log.CatalogGen, "generation failed", "err", err)
			}
			log.Info(log.CatalogGen, "catalog generated", "out", outDir, "written", written, "files", len(catalog.Files()))
		},
	}
	genCmd.Flags().StringVar(&outDir, "out", ".", "module root the generated paths are relative to")

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the catalog as a tree",
		Run: func(cmd *cobra.Command, args []string) {
			tree, err := listTree(tierName, verbose)
			if err != nil {
				log.Crit(log.CatalogGen, "list failed", "err", err)
			}
			fmt.Println(tree.String())
		},
	}
	listCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump every descriptor")
	listCmd.Flags().StringVar(&tierName, "tier", "all", "x86, amd64, rv32 or all")

	var checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate the tables and cross-check them against x86asm",
		Run: func(cmd *cobra.Command, args []string) {
			if err := check(); err != nil {
				log.Crit(log.CatalogGen, "catalog check failed", "err", err)
			}
			log.Info(log.CatalogGen, "catalog ok")
		},
	}

	rootCmd.AddCommand(genCmd, listCmd, checkCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func check() error {
	if err := catalog.Validate(); err != nil {
		return err
	}
	for _, t := range []catalog.Tier{catalog.TierX86, catalog.TierAMD64} {
		if err := catalog.CrossCheck(t); err != nil {
			return err
		}
		log.Debug(log.CatalogGen, "cross-checked", "tier", t, "rows", len(catalog.Tiered(t)))
	}
	return nil
}

// generate writes every catalog file under root and reports how many
// changed. Unchanged files are left untouched.
func generate(root string) (int, error) {
	written := 0
	for _, f := range catalog.Files() {
		src, err := f.Generate()
		if err != nil {
			return written, fmt.Errorf("%s: %w", f.Path, err)
		}
		path := filepath.Join(root, filepath.FromSlash(f.Path))
		if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, src) {
			log.Debug(log.CatalogGen, "unchanged", "path", path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return written, err
		}
		log.Debug(log.CatalogGen, "wrote", "path", path, "bytes", len(src))
		written++
	}
	return written, nil
}

func listTree(tierName string, verbose bool) (treeprint.Tree, error) {
	tree := treeprint.NewWithRoot("catalog")
	x86Tiers := map[string]catalog.Tier{"x86": catalog.TierX86, "amd64": catalog.TierAMD64}
	switch tierName {
	case "all", "x86", "amd64", "rv32":
	default:
		return nil, fmt.Errorf("unknown tier %q", tierName)
	}
	for _, name := range []string{"x86", "amd64"} {
		if tierName != "all" && tierName != name {
			continue
		}
		t := x86Tiers[name]
		rows := catalog.Tiered(t)
		branch := tree.AddBranch(fmt.Sprintf("%s (%d)", name, len(rows)))
		for _, d := range rows {
			label := fmt.Sprintf("%-14s %-6s %s", d.Name(), d.Shape, d.Notation())
			if verbose {
				branch.AddBranch(label).AddNode(spew.Sdump(d))
			} else {
				branch.AddNode(label)
			}
		}
	}
	if tierName == "all" || tierName == "rv32" {
		rows := catalog.RV32Table()
		branch := tree.AddBranch(fmt.Sprintf("rv32 (%d)", len(rows)))
		for _, d := range rows {
			label := fmt.Sprintf("%-8s %s-type funct3=%03b funct7=%07b opcode=%07b", d.GoName(), d.Format, d.Funct3, d.Funct7, d.Opcode)
			if verbose {
				branch.AddBranch(label).AddNode(spew.Sdump(d))
			} else {
				branch.AddNode(label)
			}
		}
	}
	return tree, nil
}
