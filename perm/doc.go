// Package perm implements the permutation representations exchanged with the
// group-theory oracles and printed in final results.
//
// Two forms exist side by side:
//
//   - Image: a one-line 0-based array p where p[i] is the image of i. This is
//     the raw form returned by the automorphism oracle.
//   - Cycle form: the external, 1-based textual form "(1,3,2)(4,5)". The
//     identity permutation serializes as the empty string.
//
// The package also supports partial-permutation reconstruction: merging
// chain ("1>4>2") and cycle ("(3,5)") fragments into one total permutation,
// failing with ErrAmbiguousMapping when two fragments disagree about the
// image of an element. This backs the permrebuild companion tool.
//
// All functions are pure and allocation-light; errors are sentinels checked
// with errors.Is.
package perm
