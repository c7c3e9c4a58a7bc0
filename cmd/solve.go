/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gofes/mesh"
	"github.com/notargets/gofes/model_problems/Poisson"
)

type SolveModel struct {
	GridFile   string
	ParamsFile string
	Generate   int
	ElemType   string
	Graph      bool
	Visualize  bool
	Profile    bool
	Verbose    bool
}

type InputParameters struct {
	Title         string            `yaml:"Title"`
	Source        float64           `yaml:"Source"`
	MaxElements   int               `yaml:"MaxElements"`
	MaxIterations int               `yaml:"MaxIterations"`
	RelTolSq      float64           `yaml:"RelTolSq"`
	AbsTolSq      float64           `yaml:"AbsTolSq"`
	SolutionFile  string            `yaml:"SolutionFile"`
	VisHost       string            `yaml:"VisHost"`
	VisPort       int               `yaml:"VisPort"`
	BCs           map[string]string `yaml:"BCs"` // marker name -> bc type name
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Source\n", ip.Source)
	fmt.Printf("[%d]\t\t\t= Max Elements\n", ip.MaxElements)
	fmt.Printf("[%d]\t\t\t= Max Iterations\n", ip.MaxIterations)
	fmt.Printf("%8.3g\t\t= RelTolSq\n", ip.RelTolSq)
	fmt.Printf("%8.3g\t\t= AbsTolSq\n", ip.AbsTolSq)
	keys := make([]string, 0, len(ip.BCs))
	for k := range ip.BCs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Poisson solver, able to read grid files and output solutions",
	Long: `
Reads an SU2 format grid (or generates a structured one), uniformly
refines it up to the element budget, assembles the linear finite element
discretization of -Delta u = f with Dirichlet boundary conditions and
solves it with Gauss-Seidel preconditioned CG.

gofes solve -F square.su2`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		sm := &SolveModel{}
		if sm.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			panic(err)
		}
		if sm.ParamsFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		sm.Generate, _ = cmd.Flags().GetInt("generate")
		sm.ElemType, _ = cmd.Flags().GetString("elementType")
		sm.Graph, _ = cmd.Flags().GetBool("graph")
		sm.Visualize, _ = cmd.Flags().GetBool("visualize")
		sm.Profile, _ = cmd.Flags().GetBool("profile")
		sm.Verbose, _ = cmd.Flags().GetBool("verbose")
		ip := processInput(sm)
		RunSolve(sm, ip)
	},
}

func processInput(sm *SolveModel) (ip *InputParameters) {
	var (
		err      error
		willExit bool
	)
	if len(sm.GridFile) == 0 && sm.Generate == 0 {
		err := fmt.Errorf("must supply a grid file (-F, --gridFile) in .su2 format, or -n to generate one")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	ip = &InputParameters{
		Source:        1.,
		MaxElements:   50000,
		MaxIterations: 200,
		RelTolSq:      1.e-12,
		AbsTolSq:      1.e-28,
		SolutionFile:  "sol.gf",
		VisHost:       "localhost",
		VisPort:       19916,
	}
	if len(sm.ParamsFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(sm.ParamsFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
		ip.Print()
	}
	return
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 format")
	SolveCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- Source\n\t- MaxIterations\n\t- BCs")
	SolveCmd.Flags().IntP("generate", "n", 0, "generate an n x n structured unit square mesh instead of reading a file")
	SolveCmd.Flags().StringP("elementType", "e", "quad", "element type for generated meshes: tri or quad")
	SolveCmd.Flags().BoolP("graph", "g", false, "display the solution field after solving")
	SolveCmd.Flags().BoolP("visualize", "z", false, "send mesh and solution to a GLVis server after solving")
	SolveCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the run")
	SolveCmd.Flags().BoolP("verbose", "v", false, "print progress during setup and solve")
}

func RunSolve(sm *SolveModel, ip *InputParameters) {
	if sm.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var msh *mesh.Mesh
	if len(sm.GridFile) != 0 {
		msh = mesh.ReadSU2(sm.GridFile, sm.Verbose)
	} else {
		kind := mesh.Quad
		if sm.ElemType == "tri" {
			kind = mesh.Triangle
		}
		msh = mesh.GenerateUnitSquare(sm.Generate, kind)
	}
	c := Poisson.NewPoisson(msh, ip.Source)
	c.MaxIter = ip.MaxIterations
	c.RelTolSq = ip.RelTolSq
	c.AbsTolSq = ip.AbsTolSq
	c.Verbose = sm.Verbose
	c.RefineToLimit(ip.MaxElements)
	if err := c.Setup(c.EssentialAttrs(ip.BCs)); err != nil {
		fmt.Printf("setup error: %s\n", err.Error())
		os.Exit(1)
	}
	res, err := c.Solve()
	if err != nil {
		fmt.Printf("solver error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("converged = %v, iterations = %d, residual = %g\n",
		res.Converged, res.Iterations, res.ResidualNorm)
	if err = c.SaveSolution(ip.SolutionFile); err != nil {
		fmt.Printf("unable to save solution: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("solution written to %s\n", ip.SolutionFile)
	if sm.Visualize {
		if err = c.SendToVisServer(ip.VisHost, ip.VisPort); err != nil {
			fmt.Printf("warning: %s\n", err.Error())
		}
	}
	if sm.Graph {
		c.PlotSolution()
	}
}
