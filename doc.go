// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package bpgraph implements the lexical layer of a parser for the textual
// object-dump format produced when visual-scripting graph nodes are copied or
// exported, for example:
//
//	Begin Object Class=/Script/BlueprintGraph.K2Node_VariableGet Name="K2Node_VariableGet_1"
//	   NodePosX=512
//	   CustomProperties Pin (PinId=7CD635904148E54F000DA597BA60AB39,PinName="self",)
//	End Object
//
// The syntax tree and the grammar for properties, objects and documents are
// in the ast subpackage. This package provides the pieces they are built
// from.
//
// # Inputs
//
// An Input is an immutable view of source text and a position within it.
// Every parsing function has the shape
//
//	func(in bpgraph.Input) (T, bpgraph.Input, error)
//
// and returns the parsed value with the remaining input, or an error. On
// failure the returned Input is the argument unchanged, so alternatives can
// be tried in order from the same starting point:
//
//	if v, rest, err := bpgraph.Boolean(in); err == nil {
//	   return v, rest, nil
//	}
//	// in is still positioned at the start of the value
//
// # Literals
//
// The literal parsers recognize the atomic value shapes of the format:
//
//	Function      | Example                              | Result
//	------------- | ------------------------------------ | -----------------
//	StringLiteral | "a \"quoted\"\nstring"               | string
//	UUIDLiteral   | 5EE02C3B480C2249B48954B390C035D6     | uuid.UUID
//	Boolean       | True, False                          | bool
//	Integer       | -23088                               | int64
//	Double        | -560.123400                          | float64
//	NSLOCText     | NSLOCTEXT("K2Node", "Target", "Tgt") | [3]string
//	ObjectLiteral | None, Class'"/Script/Engine.Actor"'  | class, path
//	LinkedObject  | K2Node_Event_1 FCB984164512320C...   | name, uuid.UUID
//	List          | (a, b, c,)                           | []T
//
// # Errors
//
// Failures are reported as *SyntaxError values carrying the offset where
// matching stopped. Enclosing rules annotate them with Within, so the final
// error reads as a trail from the outermost rule to the innermost failure.
package bpgraph
