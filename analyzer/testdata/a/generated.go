// Code generated by hand. DO NOT EDIT.

package a

import "test/res"

func generated(p string) int {
	r := res.Open(p) // want "res.Open is never released.*lk:dcl"
	return r.Count()
}
