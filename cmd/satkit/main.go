// Command satkit solves DIMACS CNF and bf-syntax boolean formula files
// from the command line.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hadaly-sat/satkit/bf"
	"github.com/hadaly-sat/satkit/solver"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		verbose    bool
		proofPath  string
		binaryDRAT bool
	)

	exitCode := 0
	root := &cobra.Command{
		Use:   "satkit [flags] <file.cnf|file.bf>",
		Short: "solve a DIMACS CNF or bf-syntax boolean formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			fmt.Printf("c solving %s\n", path)
			var err error
			exitCode, err = solveFile(path, verbose, proofPath, binaryDRAT)
			return err
		},
		SilenceUsage: true,
	}
	flags := root.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print solver statistics after solving")
	flags.StringVar(&proofPath, "proof", "", "write a DRAT proof trace to this path (CNF input only)")
	flags.BoolVar(&binaryDRAT, "binary-proof", false, "emit the DRAT proof in binary form rather than ASCII")
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

func solveFile(path string, verbose bool, proofPath string, binaryDRAT bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 1, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".bf") {
		form, err := bf.Parse(f)
		if err != nil {
			return 1, fmt.Errorf("parsing formula in %q: %w", path, err)
		}
		return solveBF(form), nil
	}

	s := solver.New()
	if verbose {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		s.SetLogger(logger.WithField("component", "satkit"))
	}
	if _, _, err := s.ReadDIMACS(f); err != nil {
		return 1, fmt.Errorf("parsing DIMACS file %q: %w", path, err)
	}
	if proofPath != "" {
		pf, err := os.Create(proofPath)
		if err != nil {
			return 1, fmt.Errorf("creating proof file %q: %w", proofPath, err)
		}
		defer pf.Close()
		if binaryDRAT {
			s.TraceProofBinary(pf)
		} else {
			s.TraceProofASCII(pf)
		}
		defer s.CloseProofTrace()
	}
	status := s.Solve()
	printStatus(status, func() {
		for i := int32(1); i <= int32(s.NbVars()); i++ {
			fmt.Printf("v %d\n", s.Val(i))
		}
		fmt.Println("v 0")
	})
	if verbose {
		stats := s.GetStats()
		fmt.Printf("c nb conflicts: %d\nc nb restarts: %d\nc nb decisions: %d\n", stats.Conflicts, stats.Restarts, stats.Decisions)
		fmt.Printf("c nb unit learned: %d\nc nb binary learned: %d\nc nb learned: %d\n", stats.UnitsLearned, stats.BinaryLearned, stats.ClausesLearned)
	}
	return status, nil
}

func printStatus(status int, printModel func()) {
	switch status {
	case 10:
		fmt.Println("SATISFIABLE")
		printModel()
	case 20:
		fmt.Println("UNSATISFIABLE")
	default:
		fmt.Println("INDETERMINATE")
	}
}

func solveBF(f bf.Formula) int {
	model := bf.Solve(f)
	if model == nil {
		fmt.Println("UNSATISFIABLE")
		return 20
	}
	fmt.Println("SATISFIABLE")
	keys := make([]string, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %t\n", k, model[k])
	}
	return 10
}
