package branch

import (
    "testing"
)

func TestBranches(test *testing.T){
    ok, err := backwardBranch(false)
    if err != nil || !ok {
        test.Fatalf("backward branch failed: %v", err)
    }

    ok, err = forwardBranch(false)
    if err != nil || !ok {
        test.Fatalf("forward branch failed: %v", err)
    }

    for _, branch := range branchFlags {
        for _, set := range []bool{false, true} {
            ok, err := conditionalBranch(branch, set, false)
            if err != nil || !ok {
                test.Fatalf("%v with flag %v failed: %v", branch.Name, set, err)
            }
        }
    }
}
