// Package gridbind keeps a collection of typed records and a spreadsheet
// style grid in step with each other.
//
// A RecordType pairs a declarative SheetSpec (titles, order, widths,
// formats) with an accessor table for reading and writing each field. Attach
// derives the column schema, formats the columns, loads the records and then
// reconciles changes in both directions:
//
//	records := gridbind.NewCollection[*Person]()
//	b := gridbind.Attach(sheet, personType, records,
//	    gridbind.WithVeto(func(p *Person, col gridbind.Column, v any) gridbind.Verdict {
//	        if col.Field == "Age" && v.(int) > 150 {
//	            return gridbind.Cancel
//	        }
//	        return gridbind.NoOpinion
//	    }),
//	)
//	defer b.Detach()
//
// Collection mutations are projected into grid rows; cell edits, pastes and
// cleared ranges are coerced back into record fields. Writes into the
// counterpart structure always run inside a suppression Scope so neither
// side echoes the change back.
package gridbind
