package pagination

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 12

// PageMaxSize is the maximum allowed page size
const PageMaxSize = 100

// PageMaxNumber is the highest page number a request may ask for
const PageMaxNumber = 10_000
