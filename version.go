package evofsm

// Version is the semantic version of the module.
const Version = "0.1.0"
