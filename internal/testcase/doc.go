// Package testcase expands case specifications into concrete tests.
//
// A CaseSpec is one data line of a specification: fixed inputs, a random
// draw recipe or a range product. Expand turns it into Tests, computing each
// expected value by invoking the reference once.
//
// All expansions of one generation share a History. Random and range tuples
// already in the history are never produced again; plain tuples are always
// accepted but recorded, so later generators avoid them.
package testcase
