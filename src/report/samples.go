package report

import "github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"

// SampleAdoption is the classroom-usage yes/no question.
func SampleAdoption() survey.ResponseSet {
	return survey.MustResponseSet(
		survey.Response{Label: "Yes", Count: 329},
		survey.Response{Label: "No", Count: 38},
	)
}

// SampleRatings is the five-point classroom experience rating question.
func SampleRatings() survey.ResponseSet {
	return survey.MustResponseSet(
		survey.Response{Label: "1 (Poor)", Count: 26},
		survey.Response{Label: "2 (Below Average)", Count: 36},
		survey.Response{Label: "3 (Average)", Count: 78},
		survey.Response{Label: "4 (Good)", Count: 142},
		survey.Response{Label: "5 (Excellent)", Count: 47},
	)
}

// SampleSubjectRespondents is the number of students asked which classes they use the
// tool in.
const SampleSubjectRespondents = 1000

// SampleSubjects is the multi-select subject question; counts are out of
// SampleSubjectRespondents.
func SampleSubjects() survey.ResponseSet {
	return survey.MustResponseSet(
		survey.Response{Label: "English", Count: 737},
		survey.Response{Label: "Science", Count: 525},
		survey.Response{Label: "Math", Count: 84},
		survey.Response{Label: "World Language", Count: 355},
		survey.Response{Label: "Social Studies/Humanities", Count: 545},
		survey.Response{Label: "Art", Count: 164},
		survey.Response{Label: "Technology", Count: 115},
		survey.Response{Label: "Health", Count: 14},
	)
}

// Sample returns the built-in input for a report.
func Sample(kind Kind) (Input, error) {
	switch kind {
	case Adoption:
		return Input{Responses: SampleAdoption()}, nil
	case Ratings:
		return Input{Responses: SampleRatings()}, nil
	case Subjects:
		return Input{Responses: SampleSubjects(), Respondents: SampleSubjectRespondents}, nil
	}
	return Input{}, &UnsupportedReportError{Name: string(kind)}
}
