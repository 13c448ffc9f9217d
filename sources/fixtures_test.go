package sources

// HTML fixtures shared by the adapter tests. The legacy fixture uses the
// older article markup; the modern fixture wraps the body in a prose div
// that sits alongside related-article cards.

const socketLegacyHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Understanding npm Package Security - Socket</title>
  <meta property="og:title" content="Understanding npm Package Security">
  <meta property="article:published_time" content="2024-03-15T10:00:00Z">
  <meta name="author" content="Jane Developer">
  <link rel="canonical" href="https://socket.dev/blog/understanding-npm-security">
</head>
<body>
  <nav><a href="/">Home</a> <a href="/blog">Blog</a></nav>
  <article>
    <h1>Understanding npm Package Security</h1>
    <p>npm packages are the building blocks of modern JavaScript.</p>
    <h2>Why Package Security Matters</h2>
    <p>Install scripts can run arbitrary commands, for example
    <code>npm install --ignore-scripts</code>.</p>
    <script>analytics.track("view");</script>
    <div class="newsletter">
      <h3>Subscribe to our newsletter</h3>
      <input type="email">
    </div>
    <div class="related-posts">
      <h3>Related Posts</h3>
      <a href="/blog/other">Other post</a>
    </div>
  </article>
  <footer>Copyright Socket</footer>
</body>
</html>`

const socketModernHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Modern Socket Blog Post with Chakra UI - Socket</title>
  <meta property="og:title" content="Modern Socket Blog Post with Chakra UI">
  <meta property="article:published_time" content="2024-11-15T08:30:00Z">
  <meta name="author" content="Jane Developer">
  <link rel="canonical" href="https://socket.dev/blog/modern-chakra-post">
</head>
<body>
  <div class="css-wrapper">
    <div class="prose">
      <p>This is the main article content.</p>
      <h2>First Section</h2>
      <p>It covers the technical details of the vulnerability.</p>
      <h2>Second Section</h2>
      <p>It closes with best practices and security considerations.</p>
    </div>
    <div class="related-posts">
      <h3>Related Posts</h3>
      <article class="card">
        <h4>Another Blog Post Title</h4>
        <p>A related post teaser.</p>
      </article>
    </div>
  </div>
</body>
</html>`

const plainArticleHTML = `<!DOCTYPE html>
<html>
<head>
  <title>A Plain Article</title>
  <meta property="og:title" content="A Plain Article">
  <meta property="article:published_time" content="2024-01-15">
</head>
<body>
  <article>
    <h1>A Plain Article</h1>
    <p>Some content here.</p>
  </article>
</body>
</html>`

const undatedHTML = `<!DOCTYPE html>
<html>
<head><title>No Date Here</title></head>
<body>
  <article><h1>No Date Here</h1><p>Body text.</p></article>
</body>
</html>`
