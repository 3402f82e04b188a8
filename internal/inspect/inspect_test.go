package inspect

import (
	"strconv"
	"testing"

	"github.com/cwbudde/jsrt/internal/jstring"
	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
)

func TestDumpJSONRoundTripsObjectGraph(t *testing.T) {
	e := runtimeenv.New()

	root := e.NewPlainObject()
	root.Set(jstring.FromGoString("answer"), runtime.NewNumber(42))
	root.Set(jstring.FromGoString("name"), runtime.NewStringFromGo("jsrt"))

	child := e.NewPlainObject()
	root.Set(jstring.FromGoString("child"), runtime.NewObjectValue(child))

	e.SetGlobal("root", runtime.NewObjectValue(root))

	dump, err := DumpJSON(e)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}

	globalIdx := Query(dump, "global")
	if globalIdx == "" {
		t.Fatal("dump has no \"global\" key")
	}

	// Find root by scanning the dumped objects for one whose "answer"
	// property is 42, rather than assuming a fixed arena slot.
	rootVal := root.GetOwn(jstring.FromGoString("answer"))
	if rootVal.Number() != 42 {
		t.Fatalf("sanity check failed: root.answer = %d", rootVal.Number())
	}

	found := false
	for i := 0; i < 10000; i++ {
		path := objectsPath(i) + ".properties.answer"
		if Query(dump, path) == "42" {
			found = true
			break
		}
		if Query(dump, objectsPath(i)) == "" {
			break
		}
	}
	if !found {
		t.Error("did not find an object in the dump with properties.answer == 42")
	}
}

func objectsPath(i int) string {
	return "objects." + strconv.Itoa(i)
}
