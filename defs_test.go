package pistache

import "testing"

func TestVersionString(t *testing.T) {
	if s := VersionString(Http11); s != "HTTP/1.1" {
		t.Fatalf("Version string is %s", s)
	}
	if s := VersionString(Http10); s != "HTTP/1.0" {
		t.Fatalf("Version string is %s", s)
	}
}

func TestMethodStrings(t *testing.T) {
	methods := []Method{
		Options, Get, Post, Head, Patch, Put, Delete, Trace, Connect,
		Propfind, Proppatch, Mkcol, Copy, Move, Lock, Unlock,
	}
	for _, method := range methods {
		if MethodString(method) == "" {
			t.Fatalf("Method %d has empty string", method)
		}
	}
	if s := MethodString(Get); s != "GET" {
		t.Fatalf("Method string is %s", s)
	}
	if s := MethodString(Propfind); s != "PROPFIND" {
		t.Fatalf("Method string is %s", s)
	}
}

func TestCodeString(t *testing.T) {
	if s := CodeString(Ok); s != "OK" {
		t.Fatalf("Code string is %s", s)
	}
	if s := CodeString(NotFound); s != "Not Found" {
		t.Fatalf("Code string is %s", s)
	}
	// 306 is reserved without a reason phrase
	if s := CodeString(NotUsed); s != "" {
		t.Fatalf("Code string is %s", s)
	}
	if s := CodeString(Code(599)); s != "" {
		t.Fatalf("Code string is %s", s)
	}
}

func TestError(t *testing.T) {
	fromCode := NewError(NotFound, "Not Found")
	fromStatus := NewErrorFromStatus(404, "Not Found")
	if *fromCode != *fromStatus {
		t.Fatalf("Errors differ: %+v, %+v", fromCode, fromStatus)
	}
	if fromCode.Error() != "404 Not Found" {
		t.Fatalf("Error is %s", fromCode.Error())
	}
}
