package query_test

import (
	"fmt"
	"strings"

	"github.com/lyraproj/query/compare"
	"github.com/lyraproj/query/query"
)

type person struct {
	name string
	age  int
}

type pet struct {
	name  string
	owner string
}

func ExampleWhere() {
	q := query.Range(1, 10).Where(func(v int) bool { return v%2 == 0 })
	fmt.Println(q.ToSlice())
	// Output: [2 4 6 8 10]
}

func ExampleSelect() {
	q := query.Select(query.Of(1, 2, 3), func(v int) string { return strings.Repeat(`*`, v) })
	fmt.Println(q.ToSlice())
	// Output: [* ** ***]
}

func ExampleSelectMany() {
	q := query.SelectMany(query.Of(`ab`, `cd`), func(s string) query.Sequence[rune] { return query.FromString(s) })
	fmt.Println(string(q.ToSlice()))
	// Output: abcd
}

func ExampleOrderBy() {
	people := query.Of(person{`Ann`, 31}, person{`Bob`, 25}, person{`Cid`, 31}, person{`Dan`, 25}, person{`Eve`, 40})
	sorted := query.ThenByDescending(query.OrderBy(people, func(p person) int { return p.age }), func(p person) string { return p.name })
	fmt.Println(query.Select(sorted, func(p person) string { return p.name }).ToSlice())
	// Output: [Dan Bob Cid Ann Eve]
}

func ExampleOrdered_Partitions() {
	people := query.Of(person{`Ann`, 31}, person{`Bob`, 25}, person{`Cid`, 31}, person{`Dan`, 25}, person{`Eve`, 40})
	byAge := query.OrderBy(people, func(p person) int { return p.age })
	byAge.Partitions().ForEach(func(p query.Query[person]) {
		fmt.Println(query.Select(p, func(p person) string { return p.name }).ToSlice())
	})
	// Output:
	// [Bob Dan]
	// [Ann Cid]
	// [Eve]
}

func ExampleOrderByFunc() {
	versions := query.Of(`1.10.0`, `1.2.0`, `1.9.3`, `1.2.0-rc.1`)
	sorted := query.OrderByFunc(versions, func(v string) string { return v }, compare.Versions)
	fmt.Println(sorted.ToSlice())
	// Output: [1.2.0-rc.1 1.2.0 1.9.3 1.10.0]
}

func ExampleGroupBy() {
	words := query.Of(`apple`, `avocado`, `banana`, `blueberry`, `cherry`, `apricot`)
	groups := query.GroupBy(words, func(w string) byte { return w[0] })
	groups.ForEach(func(g *query.Grouping[byte, string]) {
		fmt.Printf("%c: %v\n", g.Key(), g.ToSlice())
	})
	// Output:
	// a: [apple avocado apricot]
	// b: [banana blueberry]
	// c: [cherry]
}

func ExampleJoin() {
	owners := query.Of(`Ann`, `Bob`, `Cid`)
	pets := query.Of(pet{`Rex`, `Bob`}, pet{`Tom`, `Ann`}, pet{`Kit`, `Bob`})
	pairs := query.Join(owners, pets,
		func(o string) string { return o },
		func(p pet) string { return p.owner },
		func(o string, p pet) string { return o + `:` + p.name })
	fmt.Println(pairs.ToSlice())
	// Output: [Ann:Tom Bob:Rex Bob:Kit]
}

func ExampleGroupJoin() {
	owners := query.Of(`Ann`, `Bob`, `Cid`)
	pets := query.Of(pet{`Rex`, `Bob`}, pet{`Tom`, `Ann`}, pet{`Kit`, `Bob`})
	counts := query.GroupJoin(owners, pets,
		func(o string) string { return o },
		func(p pet) string { return p.owner },
		func(o string, ps query.Query[pet]) string { return fmt.Sprintf(`%s=%d`, o, ps.Count()) })
	fmt.Println(counts.ToSlice())
	// Output: [Ann=1 Bob=2 Cid=0]
}

func ExampleAggregateSeed() {
	csv := query.AggregateSeed(query.Of(`a`, `b`, `c`), ``, func(acc string, s string) string {
		if acc == `` {
			return s
		}
		return acc + `,` + s
	})
	fmt.Println(csv)
	// Output: a,b,c
}

func ExampleQuery_Seq() {
	for v := range query.Of(3, 1, 2).Reverse().Seq() {
		fmt.Print(v, ` `)
	}
	fmt.Println()
	// Output: 2 1 3
}
