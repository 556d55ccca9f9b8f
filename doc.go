/*
Package evofsm is an evolvable finite-state-machine engine. It encodes
automata as flat genomes (state genes plus transition genes), mutates them
with genetic-algorithm style operators, synthesizes genomes into executable
transition-table machines, runs input words with acceptor or transducer
semantics, and minimizes machines to their canonical equivalence-class form.

# Concept

A Genome is the genotype: an ordered list of state genes and a canonically
sorted list of transition genes, all index-based so genomes copy freely. A
Machine is the phenotype: the genome synthesized into an arena of realized
states and transitions with a dense transition table for fast runs.
Mutation, validation, and minimization all operate on these two
representations and convert between them.

# Usage

	eng := evofsm.New(domain.Binary(),
		evofsm.WithRand(rand.New(rand.NewPCG(1, 2))),
		evofsm.WithMaxStates(4),
	)

	genome := eng.RandomGenome(3, false)
	child := eng.Mutate(genome)

	machine := eng.NewMachine(child)
	machine.Init()
	defer machine.Free()
	machine.Reset()

	var log evofsm.RunLog
	flags := machine.Run(eng.Alphabet().StringToSymbols("1011"), &log)
	if flags.Accepted() {
		// ...
	}

The engine takes its random source and logger as explicit collaborators;
neither is ever ambient. With a fixed seed, mutation and random genome
construction are fully reproducible.
*/
package evofsm
