package main

import (
	_ "embed"
	"time"

	"github.com/kungfusheep/gridbind"
)

//go:embed team.yaml
var teamYAML []byte

type Role int

const (
	Engineer Role = iota
	Designer
	Manager
	Director
)

var roleNames = []string{"Engineer", "Designer", "Manager", "Director"}

type Person struct {
	gridbind.Indexed
	Name   string
	Role   Role
	Age    int
	Salary float64
	Rating float64
	Joined time.Time
	Remote bool
}

func personType() (*gridbind.RecordType[*Person], error) {
	spec, err := gridbind.ParseSheetSpec(teamYAML)
	if err != nil {
		return nil, err
	}
	return gridbind.NewRecordType("Person", spec, func() *Person { return &Person{Joined: time.Now().Truncate(24 * time.Hour)} },
		gridbind.StringField("Name", func(p *Person) string { return p.Name }, func(p *Person, v string) { p.Name = v }),
		gridbind.EnumField("Role", roleNames, func(p *Person) Role { return p.Role }, func(p *Person, v Role) { p.Role = v }),
		gridbind.IntField("Age", func(p *Person) int { return p.Age }, func(p *Person, v int) { p.Age = v }),
		gridbind.FloatField("Salary", func(p *Person) float64 { return p.Salary }, func(p *Person, v float64) { p.Salary = v }),
		gridbind.FloatField("Rating", func(p *Person) float64 { return p.Rating }, func(p *Person, v float64) { p.Rating = v }),
		gridbind.TimeField("Joined", func(p *Person) time.Time { return p.Joined }, func(p *Person, v time.Time) { p.Joined = v }),
		gridbind.BoolField("Remote", func(p *Person) bool { return p.Remote }, func(p *Person, v bool) { p.Remote = v }),
	), nil
}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func seed() []*Person {
	return []*Person{
		{Name: "Ada Lovelace", Role: Director, Age: 36, Salary: 182000, Rating: 0.97, Joined: day(2015, 12, 10), Remote: true},
		{Name: "Grace Hopper", Role: Manager, Age: 45, Salary: 156000, Rating: 0.91, Joined: day(2017, 6, 1)},
		{Name: "Linus Torvalds", Role: Engineer, Age: 29, Salary: 121000, Rating: 0.84, Joined: day(2021, 3, 15), Remote: true},
		{Name: "Margaret Hamilton", Role: Engineer, Age: 33, Salary: 134500, Rating: 0.88, Joined: day(2019, 9, 2)},
		{Name: "Susan Kare", Role: Designer, Age: 31, Salary: 118250, Rating: 0.9, Joined: day(2020, 1, 20)},
	}
}

// ageLimit rejects ages no living person has.
func ageLimit(_ *Person, col gridbind.Column, v any) gridbind.Verdict {
	if col.Field == "Age" {
		if age := v.(int); age < 0 || age > 150 {
			return gridbind.Cancel
		}
	}
	return gridbind.NoOpinion
}
