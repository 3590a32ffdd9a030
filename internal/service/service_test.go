package service

import (
	"testing"

	"github.com/jengzang/acp-backend-go/internal/store"
)

// incidentsCSV is a small register with four trains: 12301 has 3 incidents
// (all UP, January), 11111 has 2, 22222 has 1 and 33333 has 4.
const incidentsCSV = `DATE_M,DAY NAME_F,Train No,Train From_To,Direction UP/Down,Daily/Non-daily,CATEGORY,Reason,Type of coach,Broad section,POST_Names,STN/SEC from,COACH,Time Analysis,Mid section
05-01-2024,Friday,12301,MAS-SBC,UP,Daily,Genuine,Chain pulled by passenger,ICF,SEC-A,Central,MAS,S5,06-09,MS-TBM
10-01-2024,Wednesday,12301,MAS-SBC,UP,Daily,Miscreant,Miscreant activity,ICF,SEC-A,Central,MAS,S3,06-09,MS-TBM
20-01-2024,Saturday,12301,MAS-SBC,UP,Daily,Genuine,Chain pulled by passenger,ICF,SEC-B,North,TBM,B2,18-21,TBM-CGL
02-02-2024,Friday,11111,SBC-MAS,DOWN,Non-daily,Genuine,Late passenger,LHB,SEC-B,North,SBC,A1,09-12,SBC-BNC
15-02-2024,Thursday,11111,SBC-MAS,DOWN,Non-daily,Miscreant,Miscreant activity,LHB,SEC-B,North,SBC,A1,12-15,SBC-BNC
01-03-2024,Friday,22222,MAS-TPJ,UP,Daily,Genuine,Medical emergency,ICF,SEC-A,Central,MAS,S1,15-18,MS-TBM
05-03-2024,Tuesday,33333,TPJ-MAS,DOWN,Daily,Genuine,Late passenger,ICF,SEC-A,South,TPJ,S2,06-09,TPJ-SRGM
06-03-2024,Wednesday,33333,TPJ-MAS,DOWN,Daily,Miscreant,Miscreant activity,ICF,SEC-A,South,TPJ,S2,06-09,TPJ-SRGM
12-03-2024,Tuesday,33333,TPJ-MAS,DOWN,Daily,Genuine,Chain pulled by passenger,ICF,SEC-B,South,TPJ,S7,09-12,TPJ-SRGM
20-03-2024,Wednesday,33333,TPJ-MAS,DOWN,Daily,Genuine,Late passenger,ICF,SEC-B,South,TPJ,S9,18-21,TPJ-SRGM
`

// seedStore ingests incidentsCSV through the upload path and returns the
// store with the resulting cache key.
func seedStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	st := store.New()
	svc := NewUploadService(st, 3)
	result, err := svc.Process([]UploadedFile{{Name: "register.csv", Content: []byte(incidentsCSV)}})
	if err != nil {
		t.Fatalf("seed upload failed: %v", err)
	}
	if result.TotalRecords != 10 {
		t.Fatalf("expected 10 seeded rows, got %d", result.TotalRecords)
	}
	return st, result.CacheKey
}
