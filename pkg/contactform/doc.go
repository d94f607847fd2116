// Package contactform is a client for the site's contact endpoint that
// behaves like the contact form on the page.
//
// A Controller holds the five field values and a status that moves from
// idle to sending and then to sent or error. Sent and error fall back to
// idle after four seconds. While sending, further submissions are refused.
//
//	form := contactform.New("https://ecpw.in/api/contact",
//	    contactform.WithOnChange(func(s contactform.State) {
//	        fmt.Println(s.Status, s.Error)
//	    }),
//	)
//	defer form.Close()
//
//	_ = form.Set(contactform.FieldName, "Dr. Smith")
//	_ = form.Set(contactform.FieldEmail, "smith@example.com")
//	_ = form.Set(contactform.FieldMessage, "Interested in your program")
//
//	state, err := form.Submit(ctx)
package contactform
