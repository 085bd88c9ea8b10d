package sortedlist

import (
	"testing"

	"github.com/andy-kimball/arenaskl"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/xgzlucario/sortedlist/alloc"
	"github.com/xgzlucario/sortedlist/option"
	"github.com/xgzlucario/sortedlist/policy"
)

const benchKeys = 10000

// Skiplists keep the order on every insert, the sorted list pays once.
func BenchmarkInsertThenLookup(b *testing.B) {
	keys := make([][]byte, benchKeys)
	for i := range keys {
		keys[i] = getKey((i * 7919) % benchKeys)
	}

	b.Run("sortedlist", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			l, _ := New(16, policy.Bytes())
			for _, k := range keys {
				l.Insert(k)
			}
			for _, k := range keys {
				l.Contains(k)
			}
		}
	})

	b.Run("sortedlist-arena", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a := alloc.NewArena[[]byte](4 * option.MB)
			l, _ := NewCustom[[]byte](16, policy.Bytes(), a, nil)
			for _, k := range keys {
				l.Insert(k)
			}
			for _, k := range keys {
				l.Contains(k)
			}
			l.Release()
		}
	})

	b.Run("arenaskl", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			skl := arenaskl.NewSkiplist(arenaskl.NewArena(4 * option.MB))
			var it arenaskl.Iterator
			it.Init(skl)

			for _, k := range keys {
				it.Add(k, k, 0)
			}
			for _, k := range keys {
				it.Seek(k)
			}
		}
	})

	b.Run("leveldb-memdb", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			db := memdb.New(comparer.DefaultComparer, 4*option.MB)
			for _, k := range keys {
				db.Put(k, k)
			}
			for _, k := range keys {
				db.Get(k)
			}
		}
	})
}

func BenchmarkInsert(b *testing.B) {
	l, _ := New(16, policy.Ordered[int]())
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Insert(b.N - i)
	}
}

func BenchmarkGet(b *testing.B) {
	l, _ := New(16, policy.Ordered[int]())
	for i := 0; i < benchKeys; i++ {
		l.Insert(benchKeys - i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Get(i % benchKeys)
	}
}

func BenchmarkIter(b *testing.B) {
	l, _ := New(16, policy.Ordered[int]())
	for i := 0; i < benchKeys; i++ {
		l.Insert(benchKeys - i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for it := l.IterStart(); ; {
			it.Value()
			if !it.Next() {
				break
			}
		}
	}
}
