package fsm_test

import (
	"fmt"

	"github.com/katalvlaran/dfsm/fsm"
)

// ExampleParse demonstrates the demo machine from the encoding format
// documentation: it accepts exactly the strings that end in 'b'.
func ExampleParse() {
	m, err := fsm.Parse("0 1/a b/0 , a , 0; 0,b, 1 ;1, a, 0 ; 1, b, 1/0/ 1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	aab, _ := m.Compute("aab")
	bba, _ := m.Compute("bba")
	fmt.Println(aab)
	fmt.Println(bba)
	// Output:
	// true
	// false
}

// ExampleDFSM_Encode shows that Encode is the tidy inverse of Parse: sorted
// state ids, stable alphabet order, sorted transitions.
func ExampleDFSM_Encode() {
	m, err := fsm.Parse("1 0/a b/1,b,1;0,a,0;1,a,0;0,b,1/0/1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(m.Encode())
	// Output:
	// 0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1
}

// ExampleDFSM_Minimize merges two indistinguishable accepting sink states.
func ExampleDFSM_Minimize() {
	m, err := fsm.Parse("0 1 2/a b/0,a,1;0,b,2;1,a,1;1,b,1;2,a,2;2,b,2/0/1 2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(m.Minimize().Encode())
	// Output:
	// 0 1/a b/0,a,1;0,b,1;1,a,1;1,b,1/0/1
}

// ExampleDFSM_ToCanonicForm relabels a machine by traversal order: the
// original id 5 becomes 0 regardless of what it was called.
func ExampleDFSM_ToCanonicForm() {
	m, err := fsm.Parse("5/a b/5,b,5;5,a,5/5/")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(m.ToCanonicForm().Encode())
	// Output:
	// 0/a b/0,a,0;0,b,0/0/
}

// ExampleDFSM_String prints the human-readable set-notation description.
func ExampleDFSM_String() {
	m, err := fsm.Parse("0 1/a b/0,a,0;0,b,1;1,a,0;1,b,1/0/1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(m)
	// Output:
	// K = {0, 1}
	// Σ = {a, b}
	// δ = {(0, a, 0), (0, b, 1), (1, a, 0), (1, b, 1)}
	// s = 0
	// A = {1}
}
