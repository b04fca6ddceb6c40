package seeder

func Defaults() []Seeder {
	return []Seeder{
		WebContentSeeder{},
		SampleJobsSeeder{},
	}
}
